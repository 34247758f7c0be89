package convert

import "strings"

// Name is a five part decomposition of a personal name.
type Name struct {
	Prefix string
	Given  string
	Middle string
	Family string
	Suffix string
}

var namePrefixes = map[string]bool{
	"dr":   true,
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"prof": true,
	"rev":  true,
	"sir":  true,
}

var nameSuffixes = map[string]bool{
	"jr":  true,
	"sr":  true,
	"ii":  true,
	"iii": true,
	"iv":  true,
	"v":   true,
	"phd": true,
	"md":  true,
	"esq": true,
}

func isPrefix(token string) bool {
	return namePrefixes[strings.ToLower(strings.TrimSuffix(token, "."))]
}

func isSuffix(token string) bool {
	return nameSuffixes[strings.ToLower(strings.TrimSuffix(token, "."))]
}

// ParseName splits a free-form personal name into prefix, given, middle,
// family and suffix. Both "First [Middle] Last" and "Last, First [Middle]"
// forms are handled; a single remaining token is taken as a given name.
func ParseName(raw string) Name {
	var name Name
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return name
	}
	var tokens []string
	if head, tail, ok := strings.Cut(raw, ","); ok {
		// "Smith, Jane A." or "Smith, Jane, Jr."
		name.Family = strings.TrimSpace(head)
		for _, part := range strings.Split(tail, ",") {
			tokens = append(tokens, strings.Fields(part)...)
		}
	} else {
		tokens = strings.Fields(raw)
	}
	for len(tokens) > 0 && isPrefix(tokens[0]) {
		if name.Prefix != "" {
			name.Prefix += " "
		}
		name.Prefix += tokens[0]
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && isSuffix(tokens[len(tokens)-1]) {
		if name.Suffix == "" {
			name.Suffix = tokens[len(tokens)-1]
		} else {
			name.Suffix = tokens[len(tokens)-1] + " " + name.Suffix
		}
		tokens = tokens[:len(tokens)-1]
	}
	if name.Family != "" {
		// comma form, remaining tokens are given and middle names
		switch len(tokens) {
		case 0:
		case 1:
			name.Given = tokens[0]
		default:
			name.Given = tokens[0]
			name.Middle = strings.Join(tokens[1:], " ")
		}
		return name
	}
	switch len(tokens) {
	case 0:
	case 1:
		name.Given = tokens[0]
	case 2:
		name.Given = tokens[0]
		name.Family = tokens[1]
	default:
		name.Given = tokens[0]
		name.Middle = strings.Join(tokens[1:len(tokens)-1], " ")
		name.Family = tokens[len(tokens)-1]
	}
	return name
}
