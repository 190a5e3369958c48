package stac

import (
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"
)

// Option configures a Library at construction time.
type Option func(*libraryOptions)

type libraryOptions struct {
	fs          billy.Filesystem
	log         *slog.Logger
	treeOut     io.Writer
	configFile  string
	specVersion string
}

// WithFilesystem sets the filesystem documents are written through. It
// must be rooted at the library's root directory. The default is the
// operating system filesystem rooted there.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *libraryOptions) { o.fs = fs }
}

// WithLogger sets the structured logger. The default discards
// everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *libraryOptions) { o.log = log }
}

// WithTreeOutput sets the writer tree listings print to. The default
// is standard output.
func WithTreeOutput(w io.Writer) Option {
	return func(o *libraryOptions) { o.treeOut = w }
}

// WithConfigFile points the library at a configuration file. The key
// stac_version presets the version stamped on new nodes.
func WithConfigFile(path string) Option {
	return func(o *libraryOptions) { o.configFile = path }
}

// WithDefaultSpecVersion overrides the version stamped on new nodes,
// taking precedence over the configuration file.
func WithDefaultSpecVersion(version string) Option {
	return func(o *libraryOptions) { o.specVersion = version }
}

// NodeOption configures a single node at construction time.
type NodeOption func(*nodeOptions)

type nodeOptions struct {
	parent      Container
	title       string
	specVersion string
}

// WithParent places the node under a container. Catalogs without it
// become root nodes; collections and items require it.
func WithParent(parent Container) NodeOption {
	return func(o *nodeOptions) { o.parent = parent }
}

// WithTitle sets the node title. Items carry no title of their own and
// ignore it.
func WithTitle(title string) NodeOption {
	return func(o *nodeOptions) { o.title = title }
}

// WithSpecVersion overrides the library default version for one node.
func WithSpecVersion(version string) NodeOption {
	return func(o *nodeOptions) { o.specVersion = version }
}
