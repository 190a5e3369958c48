package stac

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/paulmach/orb"
	"github.com/spf13/viper"

	"github.com/orbitalworks/stac/pkg/vocab"
)

// runtime bundles the shared collaborators every node writes and logs
// through.
type runtime struct {
	directory string
	fs        billy.Filesystem
	log       *slog.Logger
	treeOut   io.Writer
}

// document is what a node must provide to be written to disk.
type document interface {
	Object
	json.Marshaler
}

// saveDocument marshals a node and writes it under the root directory,
// creating intermediate directories and overwriting an existing file.
func (rt *runtime) saveDocument(node document) error {
	raw, err := json.MarshalIndent(node, "", "    ")
	if err != nil {
		return fmt.Errorf("%s %q: marshal: %w", node.Kind(), node.ID(), err)
	}
	docPath := node.DocumentPath()
	if dir := path.Dir(docPath); dir != "." && dir != "/" {
		if err := rt.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%s %q: create %q: %w", node.Kind(), node.ID(), dir, err)
		}
	}
	if err := util.WriteFile(rt.fs, docPath, raw, 0o644); err != nil {
		return fmt.Errorf("%s %q: write %q: %w", node.Kind(), node.ID(), docPath, err)
	}
	rt.log.Debug("document saved",
		"kind", node.Kind(), "id", node.ID(), "path", docPath, "bytes", len(raw))
	return nil
}

// printTree writes one listing line for a node. A root node prints the
// root directory banner first.
func (rt *runtime) printTree(node Object, isRoot bool) error {
	if isRoot {
		if _, err := fmt.Fprintf(rt.treeOut, "Root directory: %s\n", rt.directory); err != nil {
			return fmt.Errorf("%s %q: tree: %w", node.Kind(), node.ID(), err)
		}
	}
	if _, err := fmt.Fprintf(rt.treeOut, "\t %s %s : %s\n", node.Kind(), node.ID(), node.DocumentPath()); err != nil {
		return fmt.Errorf("%s %q: tree: %w", node.Kind(), node.ID(), err)
	}
	return nil
}

// Library builds a tree of catalog nodes and persists it. Nodes are
// created through the Library so they share its filesystem, logger,
// and version defaults, and every created node lands in the registry
// that save and tree broadcasts iterate.
type Library struct {
	rt          *runtime
	config      *viper.Viper
	specVersion string

	mu       sync.Mutex
	registry []Persistable
}

// New opens a library over a root directory. The version stamped on
// new nodes resolves as explicit option, then the configuration file's
// stac_version key, then the package default.
func New(directory string, opts ...Option) (*Library, error) {
	var lo libraryOptions
	for _, opt := range opts {
		opt(&lo)
	}
	if lo.log == nil {
		lo.log = slog.New(slog.DiscardHandler)
	}
	if lo.treeOut == nil {
		lo.treeOut = os.Stdout
	}
	if lo.fs == nil {
		lo.fs = osfs.New(directory)
	}

	cfg := viper.New()
	if lo.configFile != "" {
		cfg.SetConfigFile(lo.configFile)
		if err := cfg.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("library config %q: %w", lo.configFile, err)
		}
	}

	specVersion := DefaultSpecVersion
	if v := cfg.GetString("stac_version"); v != "" {
		specVersion = v
	}
	if lo.specVersion != "" {
		specVersion = lo.specVersion
	}

	lib := &Library{
		rt: &runtime{
			directory: directory,
			fs:        lo.fs,
			log:       lo.log,
			treeOut:   lo.treeOut,
		},
		config:      cfg,
		specVersion: specVersion,
	}
	lib.rt.log.Debug("library ready", "directory", directory, "stac_version", specVersion)
	return lib, nil
}

// NewCatalog creates a catalog node and registers it. Without a parent
// option the catalog is a root node and its path must be the root
// position.
func (lib *Library) NewCatalog(id, pth, description string, opts ...NodeOption) (*Catalog, error) {
	c := &Catalog{}
	if err := initCatalog(c, lib.rt, KindCatalog, id, pth, description, lib.nodeOptions(opts)); err != nil {
		return nil, err
	}
	lib.register(c)
	return c, nil
}

// NewCollection creates a collection node under a parent container and
// registers it.
func (lib *Library) NewCollection(id, pth, description string, license vocab.License, extent Extent, opts ...NodeOption) (*Collection, error) {
	cl, err := newCollection(lib.rt, id, pth, description, license, extent, lib.nodeOptions(opts))
	if err != nil {
		return nil, err
	}
	lib.register(cl)
	return cl, nil
}

// NewItem creates an item node under a parent container and registers
// it. A nil properties set starts empty with a null datetime.
func (lib *Library) NewItem(id, pth string, geometry orb.Geometry, properties *Properties, opts ...NodeOption) (*Item, error) {
	it, err := newItem(lib.rt, id, pth, geometry, properties, lib.nodeOptions(opts))
	if err != nil {
		return nil, err
	}
	lib.register(it)
	return it, nil
}

func (lib *Library) nodeOptions(opts []NodeOption) nodeOptions {
	no := nodeOptions{specVersion: lib.specVersion}
	for _, opt := range opts {
		opt(&no)
	}
	return no
}

func (lib *Library) register(n Persistable) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	lib.registry = append(lib.registry, n)
	lib.rt.log.Debug("node registered",
		"kind", n.Kind(), "id", n.ID(), "document", n.DocumentPath())
}

// Save writes every registered node's document, in registration order.
// A failing node does not stop the others; the per-node errors come
// back joined.
func (lib *Library) Save() error {
	return lib.broadcast(EventSave)
}

// Tree prints one listing line per registered node, in registration
// order.
func (lib *Library) Tree() error {
	return lib.broadcast(EventTree)
}

func (lib *Library) broadcast(ev Event) error {
	nodes := lib.nodes()
	lib.rt.log.Debug("broadcast", "event", ev, "nodes", len(nodes))
	var errs []error
	for _, n := range nodes {
		if err := n.Persist(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (lib *Library) nodes() []Persistable {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	out := make([]Persistable, len(lib.registry))
	copy(out, lib.registry)
	return out
}

// Objects returns the registered nodes in registration order.
func (lib *Library) Objects() []Persistable {
	return lib.nodes()
}

// Filesystem returns the filesystem documents are written through.
func (lib *Library) Filesystem() billy.Filesystem {
	return lib.rt.fs
}

// Directory returns the root directory the library was opened over.
func (lib *Library) Directory() string {
	return lib.rt.directory
}

// SpecVersion returns the version stamped on new nodes by default.
func (lib *Library) SpecVersion() string {
	return lib.specVersion
}

// Config returns the library's configuration store.
func (lib *Library) Config() *viper.Viper {
	return lib.config
}
