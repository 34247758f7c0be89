// Package xflag provides extra flag value types.
package xflag

import (
	"flag"
	"time"
)

// Date is a flag value for YYYY-MM-DD dates.
type Date struct {
	time.Time
}

// String renders the date, empty for the zero value.
func (d *Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// Set parses a YYYY-MM-DD value.
func (d *Date) Set(value string) error {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

var _ flag.Value = (*Date)(nil)
