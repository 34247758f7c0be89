// Package solr contains types for the DataONE coordinating node SOLR search
// response. Fields inside a doc are encoded as typed nodes, where the tag name
// carries the primitive type and the name attribute the logical field name:
//
//	<doc>
//	    <str name="id">doi:10.5063/F1XY</str>
//	    <date name="dateUploaded">2013-06-13T12:13:14Z</date>
//	    <arr name="origin"><str>Jane Smith</str></arr>
//	</doc>
package solr

import "encoding/xml"

// Response is the outer SOLR select response envelope.
type Response struct {
	XMLName xml.Name `xml:"response"`
	Result  Result   `xml:"result"`
}

// Result carries the total match count and the matched docs, in service
// provided order.
type Result struct {
	Name     string `xml:"name,attr"`     // response
	NumFound int    `xml:"numFound,attr"` // 4027
	Start    int    `xml:"start,attr"`    // 0
	Docs     []Doc  `xml:"doc"`
}

// Field is a single named scalar node.
type Field struct {
	Name string `xml:"name,attr"`
	Text string `xml:",chardata"`
}

// Arr is a named multi-valued node, values are str or date children.
type Arr struct {
	Name  string   `xml:"name,attr"`
	Strs  []string `xml:"str"`
	Dates []string `xml:"date"`
}

// Doc is one parsed record. Raw keeps the inner XML so the fetch phase can
// reconstruct the record text for later, standalone parsing.
type Doc struct {
	XMLName xml.Name `xml:"doc"`
	Raw     string   `xml:",innerxml"`
	Strs    []Field  `xml:"str"`
	Dates   []Field  `xml:"date"`
	Bools   []Field  `xml:"bool"`
	Ints    []Field  `xml:"int"`
	Longs   []Field  `xml:"long"`
	Arrs    []Arr    `xml:"arr"`
}

// XML returns the doc element as a standalone XML fragment.
func (d *Doc) XML() string {
	return "<doc>" + d.Raw + "</doc>"
}

func first(fields []Field, name string) string {
	for _, f := range fields {
		if f.Name == name {
			return f.Text
		}
	}
	return ""
}

// Str returns the first str field with the given name, or "".
func (d *Doc) Str(name string) string { return first(d.Strs, name) }

// StrAll returns all str fields with the given name, never nil.
func (d *Doc) StrAll(name string) []string {
	result := []string{}
	for _, f := range d.Strs {
		if f.Name == name {
			result = append(result, f.Text)
		}
	}
	return result
}

// Date returns the first date field with the given name, or "".
func (d *Doc) Date(name string) string { return first(d.Dates, name) }

// Bool returns the first bool field with the given name, or "". The value
// stays in its text form.
func (d *Doc) Bool(name string) string { return first(d.Bools, name) }

// Int returns the first int field with the given name, or "".
func (d *Doc) Int(name string) string { return first(d.Ints, name) }

// Long returns the first long field with the given name, or "".
func (d *Doc) Long(name string) string { return first(d.Longs, name) }

func (d *Doc) arr(name string) *Arr {
	for i, a := range d.Arrs {
		if a.Name == name {
			return &d.Arrs[i]
		}
	}
	return nil
}

// Arr returns the str values of the arr field with the given name, never nil.
func (d *Doc) Arr(name string) []string {
	a := d.arr(name)
	if a == nil || len(a.Strs) == 0 {
		return []string{}
	}
	return a.Strs
}

// ArrDates returns the date values of the arr field with the given name,
// never nil.
func (d *Doc) ArrDates(name string) []string {
	a := d.arr(name)
	if a == nil || len(a.Dates) == 0 {
		return []string{}
	}
	return a.Dates
}
