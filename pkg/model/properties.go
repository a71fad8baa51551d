package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"maps"
)

// Properties is the property bag of an entity, relationship or
// classification. It is stored as a JSON document.
type Properties map[string]any

func (p Properties) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]any(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Properties) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Properties", src)
	}
	if len(data) == 0 {
		*p = nil
		return nil
	}
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = m
	return nil
}

// Clone returns a shallow copy that is safe to modify at the top level.
func (p Properties) Clone() Properties {
	if p == nil {
		return Properties{}
	}
	return maps.Clone(p)
}

// Merge returns a copy of p overlaid with the non-nil values of other.
func (p Properties) Merge(other Properties) Properties {
	merged := p.Clone()
	for k, v := range other {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		merged[k] = v
	}
	return merged
}

// String returns the string value stored under key, or "".
func (p Properties) String(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

// Int returns the integer value stored under key. Values read back from the
// database arrive as float64.
func (p Properties) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		i, err := v.Int64()
		return int(i), err == nil
	}
	return 0, false
}

// StringMap returns the map[string]string stored under key.
func (p Properties) StringMap(key string) map[string]string {
	switch v := p[key].(type) {
	case map[string]string:
		return maps.Clone(v)
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = fmt.Sprint(val)
		}
		return out
	}
	return nil
}

// AnyMap returns the map[string]any stored under key.
func (p Properties) AnyMap(key string) map[string]any {
	if m, ok := p[key].(map[string]any); ok {
		return maps.Clone(m)
	}
	return nil
}

// Strings returns the []string stored under key.
func (p Properties) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// StringMap is a JSON encoded map[string]string column.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *StringMap) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringMap", src)
	}
	out := map[string]string{}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*m = out
	return nil
}
