package stac

import "github.com/orbitalworks/stac/pkg/vocab"

// Provider names an organization that captured, processed, licenses,
// or hosts the data of a collection.
type Provider struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Roles       []vocab.ProviderRole `json:"roles,omitempty"`
	URL         string               `json:"url,omitempty"`
}

// NewProvider returns a provider with the given organization name.
func NewProvider(name string) Provider {
	return Provider{Name: name}
}
