package paramskema

import (
	"encoding/json"
	"math/big"
	"reflect"
	"time"
)

// Format hints emitted for the four supported date/time shapes. The
// minLength of each derived schema is the character length of its hint.
const (
	FormatDate          = "yyyy-mm-dd"
	FormatLocalDateTime = "yyyy-mm-ddThh:MM:ss"
	FormatZonedDateTime = "yyyy-mm-ddThh:MM:ss+hhMM"
	FormatUTCDateTime   = "yyyy-mm-ddThh:MM:ssZ"
)

// UnitTag is the single literal permitted for the Unit schema.
const UnitTag = "_"

// ---- catalog base-case builders ----
//
// Every builder is pure and total: no error path, no side effect. Numeric
// bounds are computed from the type's actual representable range, never
// hard-coded, so the catalog stays correct for any integer width.

// BooleanSchema returns the schema for boolean values.
func BooleanSchema() Schema { return Empty().WithType(KindBoolean) }

// IntegerSchema returns the schema for arbitrary-precision integers: a bare
// integer kind with no representable-range bounds.
func IntegerSchema() Schema { return Empty().WithType(KindInteger) }

// BoundedIntegerSchema returns the schema for a fixed-width integer of the
// given bit width and signedness, with inclusive minimum/maximum equal to
// the type's representable range.
func BoundedIntegerSchema(bits int, signed bool) Schema {
	lo, hi := integerBounds(bits, signed)
	return IntegerSchema().WithMinimum(lo).WithMaximum(hi)
}

// NumberSchema returns the schema for floating-point values of any precision.
func NumberSchema() Schema { return Empty().WithType(KindNumber) }

// StringSchema returns the schema for textual strings.
func StringSchema() Schema { return Empty().WithType(KindString) }

// CharSchema returns the schema for a single character: a string of exactly
// one code point.
func CharSchema() Schema {
	return StringSchema().WithMinLength(1).WithMaxLength(1)
}

// DateTimeSchema returns the schema for a date/time shape rendered with the
// given format hint. The minimum length is the hint's own length.
func DateTimeSchema(format string) Schema {
	return StringSchema().WithFormat(format).WithMinLength(len(format))
}

// DurationSchema returns the schema for a signed time span. It delegates to
// the arbitrary-precision integer schema.
func DurationSchema() Schema { return IntegerSchema() }

// UnitSchema returns the schema for the no-payload singleton type.
func UnitSchema() Schema {
	return StringSchema().WithEnum(UnitTag)
}

// integerBounds computes the inclusive representable range of a fixed-width
// integer via math/big, so 64-bit extremes survive exactly.
func integerBounds(bits int, signed bool) (json.Number, json.Number) {
	one := big.NewInt(1)
	if signed {
		hi := new(big.Int).Lsh(one, uint(bits-1))
		lo := new(big.Int).Neg(hi)
		hi.Sub(hi, one)
		return json.Number(lo.String()), json.Number(hi.String())
	}
	hi := new(big.Int).Lsh(one, uint(bits))
	hi.Sub(hi, one)
	return json.Number("0"), json.Number(hi.String())
}

// CatalogEntry pairs a human-readable name with a builtin schema, for
// catalog listings (cmd/paramskema and documentation tooling).
type CatalogEntry struct {
	Name   string
	Schema Schema
}

// BuiltinEntries returns the closed basic-type catalog in a stable order.
func BuiltinEntries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(builtinOrder))
	for _, t := range builtinOrder {
		entries = append(entries, CatalogEntry{
			Name:   builtinNames[t],
			Schema: builtinSchemas[t].Clone(),
		})
	}
	return entries
}

var (
	builtinSchemas = map[reflect.Type]Schema{
		reflect.TypeFor[bool]():          BooleanSchema(),
		reflect.TypeFor[*big.Int]():      IntegerSchema(),
		reflect.TypeFor[int]():           BoundedIntegerSchema(reflect.TypeFor[int]().Bits(), true),
		reflect.TypeFor[int8]():          BoundedIntegerSchema(8, true),
		reflect.TypeFor[int16]():         BoundedIntegerSchema(16, true),
		reflect.TypeFor[int32]():         BoundedIntegerSchema(32, true),
		reflect.TypeFor[int64]():         BoundedIntegerSchema(64, true),
		reflect.TypeFor[uint]():          BoundedIntegerSchema(reflect.TypeFor[uint]().Bits(), false),
		reflect.TypeFor[uint8]():         BoundedIntegerSchema(8, false),
		reflect.TypeFor[uint16]():        BoundedIntegerSchema(16, false),
		reflect.TypeFor[uint32]():        BoundedIntegerSchema(32, false),
		reflect.TypeFor[uint64]():        BoundedIntegerSchema(64, false),
		reflect.TypeFor[Char]():          CharSchema(),
		reflect.TypeFor[float32]():       NumberSchema(),
		reflect.TypeFor[float64]():       NumberSchema(),
		reflect.TypeFor[string]():        StringSchema(),
		reflect.TypeFor[Date]():          DateTimeSchema(FormatDate),
		reflect.TypeFor[LocalDateTime](): DateTimeSchema(FormatLocalDateTime),
		reflect.TypeFor[time.Time]():     DateTimeSchema(FormatZonedDateTime),
		reflect.TypeFor[UTCTime]():       DateTimeSchema(FormatUTCDateTime),
		reflect.TypeFor[time.Duration](): DurationSchema(),
		reflect.TypeFor[Unit]():          UnitSchema(),
	}

	builtinOrder = []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[*big.Int](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[Char](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[string](),
		reflect.TypeFor[Date](),
		reflect.TypeFor[LocalDateTime](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[UTCTime](),
		reflect.TypeFor[time.Duration](),
		reflect.TypeFor[Unit](),
	}

	builtinNames = map[reflect.Type]string{
		reflect.TypeFor[bool]():          "bool",
		reflect.TypeFor[*big.Int]():      "big.Int",
		reflect.TypeFor[int]():           "int",
		reflect.TypeFor[int8]():          "int8",
		reflect.TypeFor[int16]():         "int16",
		reflect.TypeFor[int32]():         "int32",
		reflect.TypeFor[int64]():         "int64",
		reflect.TypeFor[uint]():          "uint",
		reflect.TypeFor[uint8]():         "uint8",
		reflect.TypeFor[uint16]():        "uint16",
		reflect.TypeFor[uint32]():        "uint32",
		reflect.TypeFor[uint64]():        "uint64",
		reflect.TypeFor[Char]():          "char",
		reflect.TypeFor[float32]():       "float32",
		reflect.TypeFor[float64]():       "float64",
		reflect.TypeFor[string]():        "string",
		reflect.TypeFor[Date]():          "date",
		reflect.TypeFor[LocalDateTime](): "local-date-time",
		reflect.TypeFor[time.Time]():     "zoned-date-time",
		reflect.TypeFor[UTCTime]():       "utc-date-time",
		reflect.TypeFor[time.Duration](): "duration",
		reflect.TypeFor[Unit]():          "unit",
	}
)
