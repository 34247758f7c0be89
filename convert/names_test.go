package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseName(t *testing.T) {
	testCases := []struct {
		raw    string
		result Name
	}{
		{"", Name{}},
		{"jdoe", Name{Given: "jdoe"}},
		{"Jane Doe", Name{Given: "Jane", Family: "Doe"}},
		{"Jane W Doe", Name{Given: "Jane", Middle: "W", Family: "Doe"}},
		{"Jane Wilhelmina van Doe", Name{Given: "Jane", Middle: "Wilhelmina van", Family: "Doe"}},
		{"Dr. Jane Doe", Name{Prefix: "Dr.", Given: "Jane", Family: "Doe"}},
		{"Jane Doe Jr.", Name{Given: "Jane", Family: "Doe", Suffix: "Jr."}},
		{"Doe, Jane", Name{Given: "Jane", Family: "Doe"}},
		{"Doe, Jane W.", Name{Given: "Jane", Middle: "W.", Family: "Doe"}},
		{"Doe, Jane, Jr.", Name{Given: "Jane", Family: "Doe", Suffix: "Jr."}},
		{"  Jane   Doe  ", Name{Given: "Jane", Family: "Doe"}},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			name := ParseName(tc.raw)
			if diff := cmp.Diff(tc.result, name); diff != "" {
				t.Errorf("name mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
