package stac

import (
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/orbitalworks/stac/pkg/vocab"
)

// Item is a leaf node describing a single asset-bearing record: a
// GeoJSON feature with a geometry, a property set, and asset links. An
// item always lives inside a container and may share its directory.
type Item struct {
	rt          *runtime
	id          string
	path        string
	specVersion string
	parent      Container
	collection  string

	mu         sync.Mutex
	links      []*Link
	extensions []string
	geometry   orb.Geometry
	properties *Properties
	assets     map[string]Asset
}

func newItem(rt *runtime, id, pth string, geometry orb.Geometry, properties *Properties, opts nodeOptions) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("%s: %w", KindItem, ErrEmptyID)
	}
	if opts.parent == nil {
		return nil, fmt.Errorf("%s %q: %w", KindItem, id, ErrParentRequired)
	}
	pth = normalizePath(pth)
	if err := validateChildPath(pth, opts.parent.Path(), true); err != nil {
		return nil, fmt.Errorf("%s %q under %q: %w", KindItem, id, opts.parent.ID(), err)
	}
	if properties == nil {
		properties = NewProperties(nil)
	}

	it := &Item{
		rt:          rt,
		id:          id,
		path:        pth,
		specVersion: opts.specVersion,
		parent:      opts.parent,
		geometry:    geometry,
		properties:  properties,
		assets:      map[string]Asset{},
	}
	it.createLinks()
	return it, nil
}

// createLinks derives the item's relation links: root, self, and
// parent in the item's own list, plus an item link appended to the
// parent.
func (it *Item) createLinks() {
	root := it.parent.rootLink()
	rootHref := relToRoot(pathDepth(it.path), path.Base(root.Href()))
	l := NewLink(rootHref, vocab.RelRoot)
	l.SetMediaKind(vocab.MediaKindCatalog)
	it.links = append(it.links, l)

	self := NewLink(it.id+".json", vocab.RelSelf)
	self.SetMediaKind(vocab.MediaKindItem)
	self.SetTitle(it.id)
	it.links = append(it.links, self)

	child := NewLink(it.childLinkHref(), vocab.RelItem)
	child.SetMediaKind(vocab.MediaKindItem)
	child.SetTitle(it.id)
	it.parent.appendLink(child)

	par := NewLink("../"+it.parent.ID()+".json", vocab.RelParent)
	par.SetMediaKind(containerMediaKind(it.parent.Kind()))
	if t := it.parent.Title(); t != "" {
		par.SetTitle(t)
	}
	it.links = append(it.links, par)
}

func (it *Item) childLinkHref() string {
	return "." + trimPathPrefix(it.path, it.parent.Path()) + "/" + it.id + ".json"
}

// Kind returns the document kind of the node.
func (it *Item) Kind() Kind { return KindItem }

// ID returns the item identifier.
func (it *Item) ID() string { return it.id }

// Path returns the normalized tree path.
func (it *Item) Path() string { return it.path }

// SpecVersion returns the stac_version value the item's document carries.
func (it *Item) SpecVersion() string { return it.specVersion }

// Parent returns the container the item was created under.
func (it *Item) Parent() Container { return it.parent }

// DocumentPath returns the document location relative to the library
// root directory.
func (it *Item) DocumentPath() string {
	return it.path + "/" + it.id + ".json"
}

// Links returns a snapshot of the item's link list.
func (it *Item) Links() []*Link {
	it.mu.Lock()
	defer it.mu.Unlock()
	out := make([]*Link, len(it.links))
	copy(out, it.links)
	return out
}

// Geometry returns the item geometry, or nil when the item has none.
func (it *Item) Geometry() orb.Geometry { return it.geometry }

// BBox returns the bounding box of the geometry as a flat
// [minX, minY, maxX, maxY] slice, empty when the item has no geometry.
func (it *Item) BBox() []float64 {
	if it.geometry == nil {
		return []float64{}
	}
	b := it.geometry.Bound()
	return []float64{b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y()}
}

// Properties returns the item property set. Mutations through it are
// reflected in the projected document.
func (it *Item) Properties() *Properties { return it.properties }

// SetCollection records the collection the item belongs to. Only the
// identifier ends up in the document.
func (it *Item) SetCollection(cl *Collection) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.collection = cl.ID()
}

// Collection returns the identifier of the owning collection, or the
// empty string when the item is not part of one.
func (it *Item) Collection() string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.collection
}

// AddExtension registers an extension schema uri on the item. Item
// extension fields live inside the property set, so only the uri is
// recorded here.
func (it *Item) AddExtension(uri string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.extensions = append(it.extensions, uri)
}

// Extensions returns the registered extension uris in registration
// order.
func (it *Item) Extensions() []string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return append([]string(nil), it.extensions...)
}

// SetAsset records a named asset on the item document.
func (it *Item) SetAsset(name string, a Asset) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.assets[name] = a
}

// Asset returns the named asset.
func (it *Item) Asset(name string) (Asset, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	a, ok := it.assets[name]
	return a, ok
}

// MarshalJSON projects the item document with its fields in canonical
// order.
func (it *Item) MarshalJSON() ([]byte, error) {
	links := it.Links()

	it.mu.Lock()
	defer it.mu.Unlock()

	doc := &jsonObject{}
	doc.set("type", KindItem)
	doc.set("stac_version", it.specVersion)
	doc.set("id", it.id)
	if len(it.extensions) > 0 {
		doc.set("stac_extensions", append([]string(nil), it.extensions...))
	}
	if it.geometry != nil {
		doc.set("geometry", geojson.NewGeometry(it.geometry))
	} else {
		doc.set("geometry", nil)
	}
	doc.set("bbox", it.BBox())
	doc.set("properties", it.properties)
	doc.set("links", links)
	doc.set("assets", it.assets)
	if it.collection != "" {
		doc.set("collection", it.collection)
	}
	return json.Marshal(doc)
}

// Persist handles one broadcast event.
func (it *Item) Persist(ev Event) error {
	switch ev {
	case EventSave:
		return it.rt.saveDocument(it)
	case EventTree:
		return it.rt.printTree(it, false)
	default:
		return fmt.Errorf("%s %q: %s: %w", KindItem, it.id, ev, ErrUnknownEvent)
	}
}
