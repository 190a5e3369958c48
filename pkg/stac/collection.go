package stac

import (
	"encoding/json"
	"fmt"

	"github.com/orbitalworks/stac/pkg/vocab"
)

// Collection is a catalog that additionally describes the shared
// characteristics of the items it groups: license, spatiotemporal
// extent, keywords, providers, and field summaries.
type Collection struct {
	Catalog

	license   vocab.License
	extent    Extent
	keywords  []string
	providers []Provider
	summaries map[string]any
	assets    map[string]Asset
}

func newCollection(rt *runtime, id, pth, description string, license vocab.License, extent Extent, opts nodeOptions) (*Collection, error) {
	if opts.parent == nil {
		return nil, fmt.Errorf("%s %q: %w", KindCollection, id, ErrParentRequired)
	}
	cl := &Collection{
		license:   license,
		extent:    extent,
		summaries: map[string]any{},
		assets:    map[string]Asset{},
	}
	if err := initCatalog(&cl.Catalog, rt, KindCollection, id, pth, description, opts); err != nil {
		return nil, err
	}
	return cl, nil
}

// License returns the collection license.
func (cl *Collection) License() vocab.License { return cl.license }

// Extent returns the collection's spatiotemporal extent.
func (cl *Collection) Extent() Extent { return cl.extent }

// Keywords returns the descriptive keywords in insertion order.
func (cl *Collection) Keywords() []string {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return append([]string(nil), cl.keywords...)
}

// AddKeywords appends descriptive keywords. Duplicates are kept as
// given.
func (cl *Collection) AddKeywords(keywords ...string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.keywords = append(cl.keywords, keywords...)
}

// Providers returns the registered providers in insertion order.
func (cl *Collection) Providers() []Provider {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return append([]Provider(nil), cl.providers...)
}

// AddProvider appends a provider entry.
func (cl *Collection) AddProvider(p Provider) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.providers = append(cl.providers, p)
}

// SetSummary records a summary of an item field across the collection.
// The value is either a Range or a list of distinct values.
func (cl *Collection) SetSummary(field string, value any) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.summaries[field] = value
}

// Summary returns the recorded summary for a field.
func (cl *Collection) Summary(field string) (any, bool) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	v, ok := cl.summaries[field]
	return v, ok
}

// SetAsset records a named asset on the collection document.
func (cl *Collection) SetAsset(name string, a Asset) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.assets[name] = a
}

// Asset returns the named asset.
func (cl *Collection) Asset(name string) (Asset, bool) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	a, ok := cl.assets[name]
	return a, ok
}

// MarshalJSON projects the collection document: the catalog core
// followed by the collection fields.
func (cl *Collection) MarshalJSON() ([]byte, error) {
	doc := cl.project()

	cl.mu.Lock()
	defer cl.mu.Unlock()
	doc.set("license", cl.license)
	doc.set("extent", cl.extent)
	if len(cl.keywords) > 0 {
		doc.set("keywords", cl.keywords)
	}
	if len(cl.providers) > 0 {
		doc.set("providers", cl.providers)
	}
	if len(cl.summaries) > 0 {
		doc.set("summaries", cl.summaries)
	}
	if len(cl.assets) > 0 {
		doc.set("assets", cl.assets)
	}
	return json.Marshal(doc)
}

// Persist handles one broadcast event. The collection shadows the
// embedded catalog handler so the document marshals with the
// collection fields included.
func (cl *Collection) Persist(ev Event) error {
	switch ev {
	case EventSave:
		return cl.rt.saveDocument(cl)
	case EventTree:
		return cl.rt.printTree(cl, false)
	default:
		return fmt.Errorf("%s %q: %s: %w", cl.kind, cl.id, ev, ErrUnknownEvent)
	}
}
