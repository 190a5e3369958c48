// Package blueprint loads a YAML description of a catalog tree and
// constructs the tree through a stac.Library.
package blueprint

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNodeShape is returned when a child entry does not declare
	// exactly one of catalog, collection, item.
	ErrNodeShape = errors.New("child must declare exactly one of catalog, collection, item")

	// ErrMissingID is returned when a declared node has no id.
	ErrMissingID = errors.New("node missing id")

	// ErrMissingCatalog is returned when a blueprint has no top-level
	// catalog.
	ErrMissingCatalog = errors.New("blueprint missing top-level catalog")
)

// Blueprint is a full tree description rooted at one catalog.
type Blueprint struct {
	Catalog *Catalog `yaml:"catalog"`
}

// Catalog describes a catalog node. Path may be omitted; children then
// derive theirs from the parent's.
type Catalog struct {
	ID          string `yaml:"id"`
	Path        string `yaml:"path,omitempty"`
	Description string `yaml:"description"`
	Title       string `yaml:"title,omitempty"`
	Children    []Node `yaml:"children,omitempty"`
}

// Collection describes a collection node.
type Collection struct {
	ID          string     `yaml:"id"`
	Path        string     `yaml:"path,omitempty"`
	Description string     `yaml:"description"`
	Title       string     `yaml:"title,omitempty"`
	License     string     `yaml:"license"`
	Extent      *Extent    `yaml:"extent,omitempty"`
	Keywords    []string   `yaml:"keywords,omitempty"`
	Providers   []Provider `yaml:"providers,omitempty"`
	Children    []Node     `yaml:"children,omitempty"`
}

// Extent describes a collection's coverage: bounding boxes in
// [west, south, east, north] order and RFC 3339 intervals with null
// open ends.
type Extent struct {
	BBoxes    [][]float64 `yaml:"bbox,omitempty"`
	Intervals [][]*string `yaml:"interval,omitempty"`
}

// Provider describes one provider entry on a collection.
type Provider struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Roles       []string `yaml:"roles,omitempty"`
	URL         string   `yaml:"url,omitempty"`
}

// Item describes an item node. Path may be omitted; the item then
// shares its parent's directory.
type Item struct {
	ID         string           `yaml:"id"`
	Path       string           `yaml:"path,omitempty"`
	Datetime   string           `yaml:"datetime,omitempty"`
	Properties map[string]any   `yaml:"properties,omitempty"`
	Geometry   map[string]any   `yaml:"geometry,omitempty"`
	Assets     map[string]Asset `yaml:"assets,omitempty"`
}

// Asset describes one named asset on an item.
type Asset struct {
	Href        string   `yaml:"href"`
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Type        string   `yaml:"type,omitempty"`
	Roles       []string `yaml:"roles,omitempty"`
}

// Node is one child entry; exactly one field is set.
type Node struct {
	Catalog    *Catalog    `yaml:"catalog,omitempty"`
	Collection *Collection `yaml:"collection,omitempty"`
	Item       *Item       `yaml:"item,omitempty"`
}

// Parse decodes a blueprint document and checks its shape.
func Parse(data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("parse blueprint: %w", err)
	}
	if bp.Catalog == nil {
		return nil, ErrMissingCatalog
	}
	if err := validateCatalog(bp.Catalog); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Load reads and parses a blueprint file.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blueprint %q: %w", path, err)
	}
	bp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("blueprint %q: %w", path, err)
	}
	return bp, nil
}

func validateCatalog(c *Catalog) error {
	if c.ID == "" {
		return ErrMissingID
	}
	return validateChildren(c.ID, c.Children)
}

func validateCollection(c *Collection) error {
	if c.ID == "" {
		return ErrMissingID
	}
	return validateChildren(c.ID, c.Children)
}

func validateChildren(parentID string, children []Node) error {
	for i, n := range children {
		declared := 0
		if n.Catalog != nil {
			declared++
		}
		if n.Collection != nil {
			declared++
		}
		if n.Item != nil {
			declared++
		}
		if declared != 1 {
			return fmt.Errorf("under %q, child %d: %w", parentID, i, ErrNodeShape)
		}

		switch {
		case n.Catalog != nil:
			if err := validateCatalog(n.Catalog); err != nil {
				return err
			}
		case n.Collection != nil:
			if err := validateCollection(n.Collection); err != nil {
				return err
			}
		case n.Item != nil:
			if n.Item.ID == "" {
				return fmt.Errorf("under %q: %w", parentID, ErrMissingID)
			}
		}
	}
	return nil
}
