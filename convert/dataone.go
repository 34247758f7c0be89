package convert

import (
	"encoding/xml"
	"fmt"
	"log"
	"strings"

	"github.com/csheldonhess/dataone/dateutil"
	"github.com/csheldonhess/dataone/schema/scrapi"
	"github.com/csheldonhess/dataone/schema/solr"
)

// Normalizer reshapes raw DataONE records into normalized documents. Source
// is the name stamped into every output document.
type Normalizer struct {
	Source string
}

// NewNormalizer returns a normalizer for a named source, e.g. "DataONE".
func NewNormalizer(source string) *Normalizer {
	return &Normalizer{Source: source}
}

// Normalize parses the raw record XML and assembles the normalized document.
// The timestamp is stamped verbatim. A failed XML parse or a missing
// dateUploaded field returns a MalformedInput error; any merely absent
// optional field resolves to its declared default.
func (n *Normalizer) Normalize(raw *scrapi.RawDocument, timestamp string) (*scrapi.NormalizedDocument, error) {
	var doc solr.Doc
	if err := xml.Unmarshal([]byte(raw.Doc), &doc); err != nil {
		return nil, MalformedInput{err: fmt.Errorf("parse record %s: %w", raw.DocID, err)}
	}
	dateCreated, err := dateCreated(&doc)
	if err != nil {
		return nil, err
	}
	return &scrapi.NormalizedDocument{
		Title:        doc.Str("title"),
		Contributors: contributors(&doc),
		Properties:   properties(&doc),
		Description:  doc.Str("abstract"),
		ID:           identifiers(&doc, raw.DocID),
		Tags:         tags(&doc),
		Source:       n.Source,
		DateCreated:  dateCreated,
		DateUpdated:  "", // no source field maps to it, cf. DESIGN.md
		Timestamp:    timestamp,
	}, nil
}

// contributors reconciles the author field and the origin list into a
// deduplicated contributor list. Dedup is first seen wins on the raw strings.
// When a submitter entry carries an email, the contributor matching the
// author string gets the email attached and its name derived from the email
// local part; everyone else is parsed from the raw string.
func contributors(doc *solr.Doc) []scrapi.Contributor {
	var (
		author     = doc.Str("author")
		origin     = doc.Arr("origin")
		submitters = doc.StrAll("submitter")
	)
	var (
		names = []string{}
		seen  = map[string]bool{}
	)
	for _, s := range append([]string{author}, origin...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		names = append(names, s)
	}
	var email string
	for _, submitter := range submitters {
		if strings.Contains(submitter, "@") {
			email = submitter
		}
	}
	result := []scrapi.Contributor{}
	for _, raw := range names {
		var (
			name        Name
			contributor scrapi.Contributor
		)
		if raw == author && email != "" {
			name = ParseName(nameFromEmail(email))
			contributor.Email = email
		} else {
			name = ParseName(raw)
		}
		contributor.Prefix = name.Prefix
		contributor.Given = name.Given
		contributor.Middle = name.Middle
		contributor.Family = name.Family
		contributor.Suffix = name.Suffix
		result = append(result, contributor)
	}
	return result
}

// identifiers assembles the identifier set. The service id is the raw
// document id verbatim; a DOI is only searched for when the id mentions one.
// An id that mentions a DOI but matches no DOI shape is reported, not fatal.
func identifiers(doc *solr.Doc, docID string) scrapi.Identifiers {
	ids := scrapi.Identifiers{
		ServiceID: docID,
		URL:       doc.Str("dataUrl"),
	}
	if strings.Contains(docID, "doi") {
		ids.DOI = extractDOI(docID)
		if ids.DOI == "" {
			log.Printf("convert: no doi shape in identifier: %s", docID)
		}
	}
	return ids
}

// tags returns the lower-cased keywords of a record.
func tags(doc *solr.Doc) []string {
	result := []string{}
	for _, keyword := range doc.Arr("keywords") {
		result = append(result, strings.ToLower(keyword))
	}
	return result
}

// dateCreated renders the upload date as RFC 3339. The field is part of the
// input contract; its absence is an error, not a default.
func dateCreated(doc *solr.Doc) (string, error) {
	value := doc.Date("dateUploaded")
	if value == "" {
		return "", ErrMissingDateUploaded
	}
	parsed, err := dateutil.ParseISO8601(value)
	if err != nil {
		return "", MalformedInput{err: fmt.Errorf("parse dateUploaded %q: %w", value, err)}
	}
	return parsed, nil
}

// properties copies the closed table of auxiliary fields through from the
// record, each defaulting to "" or [] when absent.
func properties(doc *solr.Doc) scrapi.Properties {
	return scrapi.Properties{
		Author:                 doc.Str("author"),
		AuthorGivenName:        doc.Str("authorGivenName"),
		AuthorSurName:          doc.Str("authorSurName"),
		AuthoritativeMN:        doc.Str("authoritativeMN"),
		Checksum:               doc.Str("checksum"),
		ChecksumAlgorithm:      doc.Str("checksumAlgorithm"),
		DataURL:                doc.Str("dataUrl"),
		Datasource:             doc.Str("datasource"),
		DateModified:           doc.Date("dateModified"),
		DatePublished:          doc.Date("datePublished"),
		DateUploaded:           doc.Date("dateUploaded"),
		PubDate:                doc.Date("pubDate"),
		UpdateDate:             doc.Date("updateDate"),
		FileID:                 doc.Str("fileID"),
		FormatID:               doc.Str("formatId"),
		FormatType:             doc.Str("formatType"),
		Identifier:             doc.Str("identifier"),
		Investigator:           doc.Arr("investigator"),
		Origin:                 doc.Arr("origin"),
		IsPublic:               doc.Bool("isPublic"),
		ReadPermission:         doc.Arr("readPermission"),
		ReplicaMN:              doc.Arr("replicaMN"),
		ReplicaVerifiedDate:    doc.ArrDates("replicaVerifiedDate"),
		ReplicationAllowed:     doc.Bool("replicationAllowed"),
		NumberReplicas:         doc.Int("numberReplicas"),
		PreferredReplicationMN: doc.Arr("preferredReplicationMN"),
		ResourceMap:            doc.Arr("resourceMap"),
		RightsHolder:           doc.Str("rightsHolder"),
		ScientificName:         doc.Arr("scientificName"),
		Site:                   doc.Arr("site"),
		Size:                   doc.Long("size"),
		SKU:                    doc.Str("sku"),
		IsDocumentedBy:         doc.Arr("isDocumentedBy"),
	}
}
