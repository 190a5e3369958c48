// Shared helpers for atlas CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/orbitalworks/stac/internal/blueprint"
	"github.com/orbitalworks/stac/pkg/stac"
)

// newLibrary constructs a library over the given filesystem rooted at
// directory, carrying the CLI logger and any configured version pin.
func newLibrary(directory string, fs billy.Filesystem) (*stac.Library, error) {
	opts := []stac.Option{
		stac.WithFilesystem(fs),
		stac.WithLogger(newLogger()),
	}
	if configSpecVersion != "" {
		opts = append(opts, stac.WithDefaultSpecVersion(configSpecVersion))
	}
	return stac.New(directory, opts...)
}

// outputLibrary builds a disk-backed library at the resolved output
// directory, creating the directory if needed.
func outputLibrary() (*stac.Library, error) {
	outputDir, err := resolveOutputDir()
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return newLibrary(outputDir, osfs.New(outputDir))
}

// buildTree loads the blueprint at path and constructs its node tree
// in lib. Nothing is written until the caller saves.
func buildTree(lib *stac.Library, path string) error {
	bp, err := blueprint.Load(path)
	if err != nil {
		return fmt.Errorf("load blueprint: %w", err)
	}
	if _, err := blueprint.Build(lib, bp); err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	return nil
}
