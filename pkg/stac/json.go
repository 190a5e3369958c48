package stac

import (
	"bytes"
	"encoding/json"
)

// jsonObject accumulates name/value pairs and marshals them as a JSON
// object preserving insertion order. Go maps marshal with sorted keys
// and struct tags cannot carry dynamically merged extension properties,
// so node projections build their documents through this type.
type jsonObject struct {
	fields []jsonField
}

type jsonField struct {
	name  string
	value any
}

func (o *jsonObject) set(name string, value any) {
	for i := range o.fields {
		if o.fields[i].name == name {
			o.fields[i].value = value
			return
		}
	}
	o.fields = append(o.fields, jsonField{name: name, value: value})
}

func (o *jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// fieldMap is an insertion-ordered string-keyed map. Re-setting an
// existing key keeps its original position and overwrites the value.
type fieldMap struct {
	keys []string
	vals map[string]any
}

func (m *fieldMap) set(key string, value any) {
	if m.vals == nil {
		m.vals = make(map[string]any)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

func (m *fieldMap) get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

func (m *fieldMap) len() int { return len(m.keys) }

func (m *fieldMap) each(fn func(key string, value any)) {
	for _, k := range m.keys {
		fn(k, m.vals[k])
	}
}
