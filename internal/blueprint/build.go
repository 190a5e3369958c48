package blueprint

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/orbitalworks/stac/pkg/stac"
	"github.com/orbitalworks/stac/pkg/vocab"
)

// Build constructs the described tree through the library. Every
// created node lands in the library's registry; the returned catalog
// is the tree root.
func Build(lib *stac.Library, bp *Blueprint) (*stac.Catalog, error) {
	c := bp.Catalog
	root, err := lib.NewCatalog(c.ID, c.Path, c.Description, nodeOpts(nil, c.Title)...)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", c.ID, err)
	}
	if err := buildChildren(lib, root, nil, c.Children); err != nil {
		return nil, err
	}
	return root, nil
}

// buildChildren creates child nodes under parent. owner is the nearest
// enclosing collection; items created below it carry its id.
func buildChildren(lib *stac.Library, parent stac.Container, owner *stac.Collection, children []Node) error {
	for _, n := range children {
		switch {
		case n.Catalog != nil:
			if err := buildCatalog(lib, parent, owner, n.Catalog); err != nil {
				return err
			}
		case n.Collection != nil:
			if err := buildCollection(lib, parent, n.Collection); err != nil {
				return err
			}
		case n.Item != nil:
			if err := buildItem(lib, parent, owner, n.Item); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildCatalog(lib *stac.Library, parent stac.Container, owner *stac.Collection, c *Catalog) error {
	pth := containerPath(c.Path, parent, c.ID)
	cat, err := lib.NewCatalog(c.ID, pth, c.Description, nodeOpts(parent, c.Title)...)
	if err != nil {
		return fmt.Errorf("catalog %q: %w", c.ID, err)
	}
	return buildChildren(lib, cat, owner, c.Children)
}

func buildCollection(lib *stac.Library, parent stac.Container, c *Collection) error {
	license, err := vocab.LookupLicense(c.License)
	if err != nil {
		return fmt.Errorf("collection %q: %w", c.ID, err)
	}
	extent, err := convertExtent(c.Extent)
	if err != nil {
		return fmt.Errorf("collection %q: %w", c.ID, err)
	}

	pth := containerPath(c.Path, parent, c.ID)
	coll, err := lib.NewCollection(c.ID, pth, c.Description, license, extent, nodeOpts(parent, c.Title)...)
	if err != nil {
		return fmt.Errorf("collection %q: %w", c.ID, err)
	}

	if len(c.Keywords) > 0 {
		coll.AddKeywords(c.Keywords...)
	}
	for _, p := range c.Providers {
		provider, err := convertProvider(p)
		if err != nil {
			return fmt.Errorf("collection %q: provider %q: %w", c.ID, p.Name, err)
		}
		coll.AddProvider(provider)
	}

	return buildChildren(lib, coll, coll, c.Children)
}

func buildItem(lib *stac.Library, parent stac.Container, owner *stac.Collection, it *Item) error {
	pth := it.Path
	if pth == "" {
		pth = parent.Path()
	}

	props, err := convertProperties(it)
	if err != nil {
		return fmt.Errorf("item %q: %w", it.ID, err)
	}
	geom, err := convertGeometry(it.Geometry)
	if err != nil {
		return fmt.Errorf("item %q: geometry: %w", it.ID, err)
	}

	item, err := lib.NewItem(it.ID, pth, geom, props, stac.WithParent(parent))
	if err != nil {
		return fmt.Errorf("item %q: %w", it.ID, err)
	}

	names := make([]string, 0, len(it.Assets))
	for name := range it.Assets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		asset, err := convertAsset(name, it.Assets[name])
		if err != nil {
			return fmt.Errorf("item %q: %w", it.ID, err)
		}
		item.SetAsset(name, asset)
	}

	if owner != nil {
		item.SetCollection(owner)
	}
	return nil
}

// containerPath derives a container's tree path when the blueprint
// leaves it out: a directory of its own under the parent.
func containerPath(declared string, parent stac.Container, id string) string {
	if declared != "" {
		return declared
	}
	return parent.Path() + "/" + id
}

func nodeOpts(parent stac.Container, title string) []stac.NodeOption {
	var opts []stac.NodeOption
	if parent != nil {
		opts = append(opts, stac.WithParent(parent))
	}
	if title != "" {
		opts = append(opts, stac.WithTitle(title))
	}
	return opts
}

func convertProperties(it *Item) (*stac.Properties, error) {
	var datetime *time.Time
	if it.Datetime != "" {
		t, err := time.Parse(time.RFC3339, it.Datetime)
		if err != nil {
			return nil, fmt.Errorf("datetime %q: %w", it.Datetime, err)
		}
		datetime = &t
	}
	if datetime == nil && len(it.Properties) == 0 {
		return nil, nil
	}

	props := stac.NewProperties(datetime)
	keys := make([]string, 0, len(it.Properties))
	for k := range it.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		props.Set(k, it.Properties[k])
	}
	return props, nil
}

func convertGeometry(m map[string]any) (orb.Geometry, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, err
	}
	return g.Geometry(), nil
}

func convertExtent(e *Extent) (stac.Extent, error) {
	if e == nil {
		return stac.WorldExtent(), nil
	}

	spatial := stac.NewSpatialExtent(e.BBoxes...)

	intervals := make([]stac.Interval, 0, len(e.Intervals))
	for i, endpoints := range e.Intervals {
		if len(endpoints) != 2 {
			return stac.Extent{}, fmt.Errorf("interval %d: want two endpoints, got %d", i, len(endpoints))
		}
		var iv stac.Interval
		for j, s := range endpoints {
			if s == nil {
				continue
			}
			t, err := time.Parse(time.RFC3339, *s)
			if err != nil {
				return stac.Extent{}, fmt.Errorf("interval %d: %w", i, err)
			}
			iv[j] = &t
		}
		intervals = append(intervals, iv)
	}
	if len(intervals) == 0 {
		intervals = append(intervals, stac.Interval{})
	}

	return stac.NewExtent(spatial, stac.NewTemporalExtent(intervals...)), nil
}

func convertProvider(p Provider) (stac.Provider, error) {
	provider := stac.NewProvider(p.Name)
	provider.Description = p.Description
	provider.URL = p.URL
	for _, r := range p.Roles {
		role, err := vocab.LookupProviderRole(r)
		if err != nil {
			return stac.Provider{}, err
		}
		provider.Roles = append(provider.Roles, role)
	}
	return provider, nil
}

func convertAsset(name string, a Asset) (stac.Asset, error) {
	if a.Href == "" {
		return stac.Asset{}, fmt.Errorf("asset %q: missing href", name)
	}
	asset := stac.NewAsset(a.Href)
	asset.Title = a.Title
	asset.Description = a.Description
	if a.Type != "" {
		kind, err := vocab.LookupMediaKind(a.Type)
		if err != nil {
			return stac.Asset{}, fmt.Errorf("asset %q: %w", name, err)
		}
		asset.MediaKind = kind
	}
	for _, r := range a.Roles {
		role, err := vocab.LookupAssetRole(r)
		if err != nil {
			return stac.Asset{}, fmt.Errorf("asset %q: %w", name, err)
		}
		asset.Roles = append(asset.Roles, role)
	}
	return asset, nil
}
