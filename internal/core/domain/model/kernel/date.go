package kernel

import (
	"fmt"
	"time"

	"orderflow/internal/pkg/errs"
)

// DateLayout is the wire and storage format of a Date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via DateOf or ParseDate")

// Date is a calendar day without time of day. Order dates (created,
// prepayment, completion, production target) and sale dates use it.
// Internally it is the UTC midnight of that day.
type Date struct {
	t time.Time
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not in YYYY-MM-DD format", s))
	}
	return Date{t: t}, nil
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time returns the UTC midnight that starts the day.
func (d Date) Time() time.Time {
	return d.t
}

// StartIn returns midnight of the calendar day in loc.
func (d Date) StartIn(loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

// IsEqual reports whether both values denote the same day.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Validate returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// Ptr returns a pointer to a copy of d, for optional date fields.
func (d Date) Ptr() *Date {
	return &d
}
