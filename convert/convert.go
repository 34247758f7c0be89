// Package convert turns raw DataONE SOLR records into normalized scrapi
// documents.
package convert

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// MalformedInput marks a per-record input contract violation. Callers may
// skip the offending record and continue the batch.
type MalformedInput struct {
	err error
}

func (m MalformedInput) Error() string { return m.err.Error() }

func (m MalformedInput) Unwrap() error { return m.err }

// ErrMissingDateUploaded is returned when a record has no dateUploaded field,
// which upstream guarantees to be present.
var ErrMissingDateUploaded = MalformedInput{err: errors.New("missing dateUploaded")}

// doiPattern digs a DOI out of urls and sometimes not urls.
var doiPattern = regexp.MustCompile(`10\.\d{4,}[./]\S+`)

// extractDOI extracts a DOI from a string that might contain one, e.g.
// "doi:10.5063/F1XY" or "https://doi.org/10.1234/abcde.fghij". Returns the
// empty string when no DOI shape is found.
func extractDOI(id string) string {
	return doiPattern.FindString(id)
}

// titleCase capitalizes the first letter of every word and lowercases the
// rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r := []rune(strings.ToLower(word))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// nameFromEmail derives a display name from the local part of an email
// address. Dotted local parts are read as separate name words, e.g.
// "jane.doe@example.org" becomes "Jane Doe"; anything else is kept verbatim.
func nameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	if strings.Contains(name, ".") {
		name = titleCase(strings.ReplaceAll(name, ".", " "))
	}
	return name
}
