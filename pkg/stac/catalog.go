package stac

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/orbitalworks/stac/pkg/vocab"
)

// Catalog is the base container node of a tree. It groups child
// catalogs, collections, and items, and carries links to them with
// relative hrefs derived from each node's path.
type Catalog struct {
	rt          *runtime
	kind        Kind
	id          string
	path        string
	description string
	specVersion string
	title       string
	parent      Container

	// mu guards the link list, which children append into at creation
	// time, and the extension slices.
	mu         sync.Mutex
	links      []*Link
	extensions []string
	extProps   fieldMap
}

// initCatalog fills in a container node core and wires its links.
// Collection construction reuses it on the embedded Catalog.
func initCatalog(c *Catalog, rt *runtime, kind Kind, id, pth, description string, opts nodeOptions) error {
	if id == "" {
		return fmt.Errorf("%s: %w", kind, ErrEmptyID)
	}
	pth = normalizePath(pth)
	if opts.parent == nil && pth != "" {
		return fmt.Errorf("%s %q: %w", kind, id, ErrRootPath)
	}
	if opts.parent != nil {
		if err := validateChildPath(pth, opts.parent.Path(), false); err != nil {
			return fmt.Errorf("%s %q under %q: %w", kind, id, opts.parent.ID(), err)
		}
	}

	c.rt = rt
	c.kind = kind
	c.id = id
	c.path = pth
	c.description = description
	c.specVersion = opts.specVersion
	c.title = opts.title
	c.parent = opts.parent
	c.createLinks()
	return nil
}

// createLinks derives the node's relation links. The node's own list
// ends up ordered root, self, parent; the parent additionally gains a
// child link pointing back down.
func (c *Catalog) createLinks() {
	c.createRootLink()
	c.createSelfLink()
	if c.parent != nil {
		c.createChildLink()
		c.createParentLink()
	}
}

// createRootLink points at the root document of the tree. A parentless
// node is its own root; otherwise the root filename comes from the
// parent's root link and the up prefix repeats ".." once per segment
// of this node's path.
func (c *Catalog) createRootLink() {
	var href string
	if c.parent == nil {
		href = relToRoot(0, c.id+".json")
	} else {
		root := c.parent.rootLink()
		href = relToRoot(pathDepth(c.path), path.Base(root.Href()))
	}
	l := NewLink(href, vocab.RelRoot)
	l.SetMediaKind(vocab.MediaKindCatalog)
	c.links = append(c.links, l)
}

func (c *Catalog) createSelfLink() {
	l := NewLink(c.id+".json", vocab.RelSelf)
	l.SetMediaKind(containerMediaKind(c.kind))
	title := c.title
	if title == "" {
		title = c.id
	}
	l.SetTitle(title)
	c.links = append(c.links, l)
}

// createChildLink appends the downward link into the parent's list.
func (c *Catalog) createChildLink() {
	l := NewLink(c.childLinkHref(), vocab.RelChild)
	l.SetMediaKind(containerMediaKind(c.kind))
	if c.title != "" {
		l.SetTitle(c.title)
	}
	c.parent.appendLink(l)
}

func (c *Catalog) createParentLink() {
	l := NewLink("../"+c.parent.ID()+".json", vocab.RelParent)
	l.SetMediaKind(containerMediaKind(c.parent.Kind()))
	if t := c.parent.Title(); t != "" {
		l.SetTitle(t)
	}
	c.links = append(c.links, l)
}

// childLinkHref is the href of this node's entry in the parent's link
// list: the node path with the parent path prefix stripped, anchored
// to the parent's directory.
func (c *Catalog) childLinkHref() string {
	return "." + trimPathPrefix(c.path, c.parent.Path()) + "/" + c.id + ".json"
}

// Kind returns the document kind of the node.
func (c *Catalog) Kind() Kind { return c.kind }

// ID returns the node identifier.
func (c *Catalog) ID() string { return c.id }

// Path returns the normalized tree path.
func (c *Catalog) Path() string { return c.path }

// Description returns the node description.
func (c *Catalog) Description() string { return c.description }

// SpecVersion returns the stac_version value the node's document carries.
func (c *Catalog) SpecVersion() string { return c.specVersion }

// Title returns the node title, or the empty string when unset.
func (c *Catalog) Title() string { return c.title }

// Parent returns the parent container, or nil for the root node.
func (c *Catalog) Parent() Container { return c.parent }

// DocumentPath returns the document location relative to the library
// root directory.
func (c *Catalog) DocumentPath() string {
	return c.path + "/" + c.id + ".json"
}

// Links returns a snapshot of the link list. The links themselves are
// shared, so title and media-kind updates stay visible.
func (c *Catalog) Links() []*Link {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Link, len(c.links))
	copy(out, c.links)
	return out
}

func (c *Catalog) appendLink(l *Link) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.links = append(c.links, l)
}

func (c *Catalog) rootLink() *Link {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.links {
		if l.Rel() == vocab.RelRoot {
			return l
		}
	}
	return nil
}

func (c *Catalog) setChildLinkTitle(href, title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.links {
		if l.Href() == href {
			l.SetTitle(title)
			break
		}
	}
}

// SetTitle sets the node title and keeps the dependent link titles in
// step: first the node's own self link, then the matching child link
// in the parent's list, located by exact href match.
func (c *Catalog) SetTitle(title string) {
	c.title = title
	c.updateSelfLinkTitle(title)
	if c.parent != nil {
		c.parent.setChildLinkTitle(c.childLinkHref(), title)
	}
}

func (c *Catalog) updateSelfLinkTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.links {
		if l.Rel() == vocab.RelSelf {
			l.SetTitle(title)
			break
		}
	}
}

// AddExtension registers an extension schema uri and merges its
// top-level properties into the document. Later registrations win on
// duplicate property names; uri uniqueness is the caller's concern.
func (c *Catalog) AddExtension(uri string, props map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.extensions = append(c.extensions, uri)
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.extProps.set(k, props[k])
	}
}

// Extensions returns the registered extension uris in registration
// order.
func (c *Catalog) Extensions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.extensions...)
}

// project assembles the ordered catalog document core, shared with the
// collection projection.
func (c *Catalog) project() *jsonObject {
	links := c.Links()

	doc := &jsonObject{}
	doc.set("type", c.kind)
	doc.set("stac_version", c.specVersion)
	doc.set("id", c.id)
	doc.set("description", c.description)
	doc.set("links", links)

	c.mu.Lock()
	if len(c.extensions) > 0 {
		doc.set("stac_extensions", append([]string(nil), c.extensions...))
	}
	c.extProps.each(func(k string, v any) { doc.set(k, v) })
	c.mu.Unlock()

	if c.title != "" {
		doc.set("title", c.title)
	}
	return doc
}

// MarshalJSON projects the catalog document with its fields in
// canonical order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.project())
}

// Persist handles one broadcast event.
func (c *Catalog) Persist(ev Event) error {
	switch ev {
	case EventSave:
		return c.rt.saveDocument(c)
	case EventTree:
		return c.rt.printTree(c, c.parent == nil)
	default:
		return fmt.Errorf("%s %q: %s: %w", c.kind, c.id, ev, ErrUnknownEvent)
	}
}
