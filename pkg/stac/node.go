package stac

import (
	"fmt"
	"strings"

	"github.com/orbitalworks/stac/pkg/vocab"
)

// Kind identifies the document kind of a node.
type Kind string

const (
	KindCatalog    Kind = "Catalog"
	KindCollection Kind = "Collection"
	KindItem       Kind = "Feature"
)

// Event identifies a broadcast operation over registered nodes.
type Event int

const (
	// EventSave writes every node's JSON document to disk.
	EventSave Event = iota
	// EventTree prints every node's tree location.
	EventTree
)

func (e Event) String() string {
	switch e {
	case EventSave:
		return "save"
	case EventTree:
		return "tree"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Object is the read-only view shared by every node in a tree.
type Object interface {
	// Kind returns the document kind of the node.
	Kind() Kind

	// ID returns the node identifier.
	ID() string

	// Path returns the normalized tree path of the node. The empty
	// string is the root position.
	Path() string

	// DocumentPath returns the node's document location relative to
	// the library root directory.
	DocumentPath() string
}

// Persistable is implemented by every node a Library registers. The
// Library broadcasts save and tree events over its registry; each
// registered node receives each broadcast exactly once, in
// registration order.
type Persistable interface {
	Object

	// Persist handles one broadcast event.
	Persist(ev Event) error
}

// Container is the narrow view of a node that can hold children. Only
// catalogs and collections satisfy it; items and child containers
// consume nothing else of their parent.
type Container interface {
	Object

	// Title returns the node title, or the empty string when unset.
	Title() string

	// Links returns a snapshot of the node's link list.
	Links() []*Link

	appendLink(l *Link)
	rootLink() *Link
	setChildLinkTitle(href, title string)
}

// containerMediaKind maps a parent node kind to its document media
// kind. Only catalogs and collections can be parents; any other kind
// reaching this point is an internal inconsistency.
func containerMediaKind(k Kind) vocab.MediaKind {
	switch k {
	case KindCatalog:
		return vocab.MediaKindCatalog
	case KindCollection:
		return vocab.MediaKindCollection
	default:
		panic(fmt.Sprintf("stac: kind %q cannot be a parent", k))
	}
}

// normalizePath strips trailing separators; "/" and "" both denote the
// root position.
func normalizePath(p string) string {
	return strings.TrimRight(p, "/")
}

// pathDepth counts the segments of a normalized path.
func pathDepth(p string) int {
	p = strings.Trim(p, "/")
	if p == "" {
		return 0
	}
	return strings.Count(p, "/") + 1
}

// relToRoot builds a root link href: depth repetitions of ".." joined
// in front of the root document filename, "." when the node sits at
// the root position.
func relToRoot(depth int, filename string) string {
	prefix := "."
	if depth > 0 {
		prefix = strings.TrimSuffix(strings.Repeat("../", depth), "/")
	}
	return prefix + "/" + filename
}

// validateChildPath checks that a child path lies under the parent
// path. Containers claim a directory of their own, so their path must
// be strictly below the parent's; items live inside their container's
// directory, so equality is allowed for them.
func validateChildPath(childPath, parentPath string, allowEqual bool) error {
	if childPath == parentPath {
		if allowEqual {
			return nil
		}
		return ErrPathOutsideParent
	}
	if !strings.HasPrefix(childPath, parentPath+"/") {
		return ErrPathOutsideParent
	}
	return nil
}

// trimPathPrefix strips the parent path prefix from a child path. Only
// the leading occurrence is removed, so a repeated segment deeper in
// the path survives intact.
func trimPathPrefix(childPath, parentPath string) string {
	return strings.TrimPrefix(childPath, parentPath)
}
