package paramskema

import "time"

// Char is a single Unicode code point. It exists as a named type because
// rune is an alias of int32 and would otherwise resolve to an integer
// schema through the kind fallback.
type Char rune

// Date is a calendar date with no time-of-day component.
// Its schema is a string of the form "yyyy-mm-dd".
type Date time.Time

// LocalDateTime is a wall-clock timestamp with no zone attached.
// Its schema is a string of the form "yyyy-mm-ddThh:MM:ss".
type LocalDateTime time.Time

// UTCTime is a timestamp pinned to UTC.
// Its schema is a string of the form "yyyy-mm-ddThh:MM:ssZ".
// A plain time.Time resolves to the zoned form "yyyy-mm-ddThh:MM:ss+hhMM".
type UTCTime time.Time

// Unit is the no-payload singleton type. Its schema is a one-element string
// enumeration whose only permitted literal is "_".
type Unit struct{}

// Time returns the underlying time.Time.
func (d Date) Time() time.Time { return time.Time(d) }

// Time returns the underlying time.Time.
func (d LocalDateTime) Time() time.Time { return time.Time(d) }

// Time returns the underlying time.Time, normalized to UTC.
func (d UTCTime) Time() time.Time { return time.Time(d).UTC() }

// Enumeration is implemented by types whose values form a closed set of
// nullary alternatives. EnumAlternatives returns the declared names in
// declaration order; the derived schema applies the configured tag modifier
// to each name. The method must be pure and must not depend on the receiver
// (it is invoked on a zero value during shape construction).
type Enumeration interface {
	EnumAlternatives() []string
}
