package stac

import (
	"encoding/json"

	"github.com/orbitalworks/stac/pkg/vocab"
)

// Link is one hyperlink relation carried by a node. The target href and
// relation kind are fixed at construction; media kind and title may be
// set afterwards.
type Link struct {
	href  string
	rel   vocab.RelKind
	media vocab.MediaKind
	title string
}

// NewLink returns a link with the given target and relation kind.
func NewLink(href string, rel vocab.RelKind) *Link {
	return &Link{href: href, rel: rel}
}

// Href returns the link target.
func (l *Link) Href() string { return l.href }

// Rel returns the relation kind.
func (l *Link) Rel() vocab.RelKind { return l.rel }

// MediaKind returns the media kind of the referenced document, or the
// empty string when unset.
func (l *Link) MediaKind() vocab.MediaKind { return l.media }

// Title returns the human-readable title, or the empty string when
// unset.
func (l *Link) Title() string { return l.title }

// SetMediaKind sets the media kind of the referenced document.
func (l *Link) SetMediaKind(k vocab.MediaKind) { l.media = k }

// SetTitle sets the human-readable title.
func (l *Link) SetTitle(title string) { l.title = title }

// MarshalJSON projects the link as {href, rel, type?, title?}.
func (l *Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Href  string          `json:"href"`
		Rel   vocab.RelKind   `json:"rel"`
		Media vocab.MediaKind `json:"type,omitempty"`
		Title string          `json:"title,omitempty"`
	}{
		Href:  l.href,
		Rel:   l.rel,
		Media: l.media,
		Title: l.title,
	})
}
