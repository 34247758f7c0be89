package solr

import (
	"encoding/xml"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleResponse = `<?xml version="1.0" encoding="UTF-8"?>
<response>
<lst name="responseHeader"><int name="status">0</int></lst>
<result name="response" numFound="4027" start="0">
<doc>
<str name="id">doi:10.5063/F1XY</str>
<str name="author">Jane Smith</str>
<str name="submitter">jane.smith@lab.org</str>
<str name="submitter">admin@lab.org</str>
<date name="dateUploaded">2013-06-13T12:13:14Z</date>
<bool name="isPublic">true</bool>
<int name="numberReplicas">3</int>
<long name="size">1234</long>
<arr name="origin"><str>Jane Smith</str><str>John Doe</str></arr>
<arr name="replicaVerifiedDate"><date>2013-06-14T00:00:00Z</date></arr>
</doc>
</result>
</response>`

func mustResponse(t *testing.T) *Response {
	t.Helper()
	var sr Response
	if err := xml.Unmarshal([]byte(sampleResponse), &sr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &sr
}

func TestResponse(t *testing.T) {
	sr := mustResponse(t)
	if sr.Result.NumFound != 4027 {
		t.Errorf("numFound: got %d, want 4027", sr.Result.NumFound)
	}
	if len(sr.Result.Docs) != 1 {
		t.Fatalf("docs: got %d, want 1", len(sr.Result.Docs))
	}
}

func TestDocAccessors(t *testing.T) {
	doc := &mustResponse(t).Result.Docs[0]
	if got := doc.Str("id"); got != "doi:10.5063/F1XY" {
		t.Errorf("id: got %q", got)
	}
	if got := doc.Str("title"); got != "" {
		t.Errorf("absent str: got %q, want empty", got)
	}
	if got := doc.StrAll("submitter"); !cmp.Equal(got, []string{"jane.smith@lab.org", "admin@lab.org"}) {
		t.Errorf("submitters: got %v", got)
	}
	if got := doc.Date("dateUploaded"); got != "2013-06-13T12:13:14Z" {
		t.Errorf("dateUploaded: got %q", got)
	}
	if got := doc.Bool("isPublic"); got != "true" {
		t.Errorf("isPublic: got %q", got)
	}
	if got := doc.Int("numberReplicas"); got != "3" {
		t.Errorf("numberReplicas: got %q", got)
	}
	if got := doc.Long("size"); got != "1234" {
		t.Errorf("size: got %q", got)
	}
	if got := doc.Arr("origin"); !cmp.Equal(got, []string{"Jane Smith", "John Doe"}) {
		t.Errorf("origin: got %v", got)
	}
	if got := doc.ArrDates("replicaVerifiedDate"); !cmp.Equal(got, []string{"2013-06-14T00:00:00Z"}) {
		t.Errorf("replicaVerifiedDate: got %v", got)
	}
	// absent lists are empty, never nil
	if got := doc.Arr("keywords"); got == nil || len(got) != 0 {
		t.Errorf("absent arr: got %#v, want empty", got)
	}
	if got := doc.ArrDates("keywords"); got == nil || len(got) != 0 {
		t.Errorf("absent arr dates: got %#v, want empty", got)
	}
	if got := doc.StrAll("nope"); got == nil || len(got) != 0 {
		t.Errorf("absent str all: got %#v, want empty", got)
	}
}

func TestDocXMLRoundTrip(t *testing.T) {
	doc := &mustResponse(t).Result.Docs[0]
	var reparsed Doc
	if err := xml.Unmarshal([]byte(doc.XML()), &reparsed); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got := reparsed.Str("id"); got != "doi:10.5063/F1XY" {
		t.Errorf("reparsed id: got %q", got)
	}
	if got := reparsed.Arr("origin"); !cmp.Equal(got, []string{"Jane Smith", "John Doe"}) {
		t.Errorf("reparsed origin: got %v", got)
	}
}
