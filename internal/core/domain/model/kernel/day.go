package kernel

import (
	"time"

	"frangodahora/internal/pkg/errs"
	"frangodahora/internal/pkg/guard"
)

// dayLayout is the canonical wire and storage format for business days.
const dayLayout = "2006-01-02"

// ErrDayIsNotConstructed indicates a Day that was not created via NewDay or
// ParseDay.
var ErrDayIsNotConstructed = errs.NewValueIsRequiredError(
	"Day must be created via NewDay or ParseDay",
)

// Day is a calendar day in the business's local time. It is a value object:
// immutable, comparable via IsEqual, and always valid once constructed.
//
// Every operation that reads or consumes stock receives the Day explicitly
// instead of computing it from the wall clock, so a request that crosses
// midnight is attributed to exactly one day.
type Day struct {
	value time.Time

	guard guard.ConstructorGuard
}

// NewDay truncates t to its calendar day in t's location.
func NewDay(t time.Time) Day {
	year, month, day := t.Date()
	return Day{
		value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// ParseDay parses a day in "YYYY-MM-DD" form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("day", err)
	}
	return NewDay(t), nil
}

// Validate ensures the Day was created through a constructor.
func (d Day) Validate() error {
	return d.guard.Validate(ErrDayIsNotConstructed)
}

// String returns the canonical "YYYY-MM-DD" representation.
func (d Day) String() string {
	return d.value.Format(dayLayout)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return d.value
}

// IsEqual reports whether both values denote the same calendar day.
func (d Day) IsEqual(other Day) bool {
	return d.value.Equal(other.value)
}
