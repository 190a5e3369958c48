package stac

import (
	"encoding/json"
	"time"
)

// Properties carries an item's acquisition metadata: free-form fields
// plus the nominal datetime.
type Properties struct {
	datetime *time.Time
	fields   fieldMap
}

// NewProperties returns a property set with the given nominal datetime.
// A nil datetime is allowed and serializes as null; the free-form
// fields are then expected to describe the acquisition window.
func NewProperties(datetime *time.Time) *Properties {
	var p Properties
	if datetime != nil {
		t := datetime.UTC()
		p.datetime = &t
	}
	return &p
}

// SetDatetime replaces the nominal datetime.
func (p *Properties) SetDatetime(t time.Time) {
	t = t.UTC()
	p.datetime = &t
}

// Datetime returns the nominal datetime, or nil when unset.
func (p *Properties) Datetime() *time.Time { return p.datetime }

// Set stores a free-form field. Insertion order is preserved in the
// serialized document; re-setting a key keeps its position. The
// datetime key is reserved and managed through SetDatetime.
func (p *Properties) Set(key string, value any) {
	p.fields.set(key, value)
}

// Get returns a free-form field by key.
func (p *Properties) Get(key string) (any, bool) {
	return p.fields.get(key)
}

// MarshalJSON emits the free-form fields in insertion order with
// datetime always last.
func (p *Properties) MarshalJSON() ([]byte, error) {
	doc := &jsonObject{}
	p.fields.each(func(k string, v any) {
		if k == "datetime" {
			return
		}
		doc.set(k, v)
	})
	if p.datetime != nil {
		doc.set("datetime", p.datetime.Format(time.RFC3339))
	} else {
		doc.set("datetime", nil)
	}
	return json.Marshal(doc)
}
