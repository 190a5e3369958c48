package stac

import "github.com/orbitalworks/stac/pkg/vocab"

// Asset points at data or metadata reachable from an item or
// collection document.
type Asset struct {
	Href        string            `json:"href"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	MediaKind   vocab.MediaKind   `json:"type,omitempty"`
	Roles       []vocab.AssetRole `json:"roles,omitempty"`
}

// NewAsset returns an asset pointing at href.
func NewAsset(href string) Asset {
	return Asset{Href: href}
}
