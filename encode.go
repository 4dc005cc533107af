package paramskema

import (
	"bytes"
	"encoding/json"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// EncodeJSON renders s in the wire form consumed by downstream schema
// tooling: keys type/format/minimum/maximum/minLength/maxLength/enum, with
// absent fields omitted entirely rather than emitted as null.
func EncodeJSON(s Schema) ([]byte, error) { return j.Marshal(s) }

// EncodeJSONIndent is EncodeJSON with two-space indentation.
func EncodeJSONIndent(s Schema) ([]byte, error) { return j.MarshalIndent(s, "", "  ") }

// EncodeYAML renders s as YAML. The schema is round-tripped through its JSON
// wire form with UseNumber so integer bounds keep their exact textual value
// instead of passing through float64.
func EncodeYAML(s Schema) ([]byte, error) {
	data, err := j.Marshal(s)
	if err != nil {
		return nil, err
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var node map[string]any
	if err := dec.Decode(&node); err != nil {
		return nil, err
	}
	return yaml.Marshal(yamlNormalize(node))
}

// yamlNormalize rewrites json.Number leaves into int64 (or float64 when the
// value does not fit an int64) so the YAML encoder emits plain scalars.
func yamlNormalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, vv := range x {
			out[k] = yamlNormalize(vv)
		}
		return out
	case []any:
		for i := range x {
			x[i] = yamlNormalize(x[i])
		}
		return x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		// uint64 range beyond int64 (e.g. the uint64 maximum).
		if u, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
			return u
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	default:
		return v
	}
}
