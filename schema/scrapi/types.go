// Package scrapi contains the document types exchanged with the scrapi
// harvesting framework: the raw record wrapper produced by the fetch phase and
// the normalized document handed to the linter and indexer.
package scrapi

// RawDocument wraps a single record as returned by the search endpoint,
// before normalization. DocID is the only externally meaningful identifier at
// this stage.
type RawDocument struct {
	Doc      string `json:"doc"`
	Source   string `json:"source"`
	DocID    string `json:"docID"`
	FileType string `json:"filetype"`
}

// Contributor is a parsed human name plus optional contact. ORCID is carried
// for schema compatibility; no DataONE field maps to it.
type Contributor struct {
	Prefix string `json:"prefix"`
	Given  string `json:"given"`
	Middle string `json:"middle"`
	Family string `json:"family"`
	Suffix string `json:"suffix"`
	Email  string `json:"email"`
	ORCID  string `json:"ORCID"`
}

// Identifiers groups the identifiers of one record. ServiceID is always the
// raw document id, DOI is empty unless a DOI shape was found inside it.
type Identifiers struct {
	ServiceID string `json:"service_id"`
	DOI       string `json:"doi"`
	URL       string `json:"url"`
}

// Properties is the closed table of auxiliary metadata fields copied through
// from the source record. Every field is always present in the serialized
// output, defaulting to "" or []. The JSON keys match the SOLR field names.
//
// Scalars keep their source text form regardless of the SOLR node type (bool,
// int and long values arrive as text and are passed through unaltered).
type Properties struct {
	Author                 string   `json:"author"`
	AuthorGivenName        string   `json:"authorGivenName"`
	AuthorSurName          string   `json:"authorSurName"`
	AuthoritativeMN        string   `json:"authoritativeMN"`
	Checksum               string   `json:"checksum"`
	ChecksumAlgorithm      string   `json:"checksumAlgorithm"`
	DataURL                string   `json:"dataUrl"`
	Datasource             string   `json:"datasource"`
	DateModified           string   `json:"dateModified"`
	DatePublished          string   `json:"datePublished"`
	DateUploaded           string   `json:"dateUploaded"`
	PubDate                string   `json:"pubDate"`
	UpdateDate             string   `json:"updateDate"`
	FileID                 string   `json:"fileID"`
	FormatID               string   `json:"formatId"`
	FormatType             string   `json:"formatType"`
	Identifier             string   `json:"identifier"`
	Investigator           []string `json:"investigator"`
	Origin                 []string `json:"origin"`
	IsPublic               string   `json:"isPublic"`
	ReadPermission         []string `json:"readPermission"`
	ReplicaMN              []string `json:"replicaMN"`
	ReplicaVerifiedDate    []string `json:"replicaVerifiedDate"`
	ReplicationAllowed     string   `json:"replicationAllowed"`
	NumberReplicas         string   `json:"numberReplicas"`
	PreferredReplicationMN []string `json:"preferredReplicationMN"`
	ResourceMap            []string `json:"resourceMap"`
	RightsHolder           string   `json:"rightsHolder"`
	ScientificName         []string `json:"scientificName"`
	Site                   []string `json:"site"`
	Size                   string   `json:"size"`
	SKU                    string   `json:"sku"`
	IsDocumentedBy         []string `json:"isDocumentedBy"`
}

// NormalizedDocument is the canonical output schema consumed by downstream
// indexing. DateUpdated has no defined source mapping yet and stays empty.
type NormalizedDocument struct {
	Title        string        `json:"title"`
	Contributors []Contributor `json:"contributors"`
	Properties   Properties    `json:"properties"`
	Description  string        `json:"description"`
	ID           Identifiers   `json:"id"`
	Tags         []string      `json:"tags"`
	Source       string        `json:"source"`
	DateCreated  string        `json:"dateCreated"`
	DateUpdated  string        `json:"dateUpdated"`
	Timestamp    string        `json:"timestamp"`
}
