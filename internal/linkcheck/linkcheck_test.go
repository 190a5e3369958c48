package linkcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalworks/stac/pkg/stac"
)

// buildTree writes a small consistent tree: a root catalog, a child
// catalog one level down, and an item sharing the child's directory
// but linked under the root.
func buildTree(t *testing.T, dir string) {
	t.Helper()

	lib, err := stac.New(dir, stac.WithFilesystem(osfs.New(dir)))
	require.NoError(t, err)

	root, err := lib.NewCatalog("first_cat", "/", "root")
	require.NoError(t, err)
	_, err = lib.NewCatalog("maps", "/maps", "maps", stac.WithParent(root))
	require.NoError(t, err)
	_, err = lib.NewItem("dem", "/maps", nil, nil, stac.WithParent(root))
	require.NoError(t, err)

	require.NoError(t, lib.Save())
}

func TestCheckConsistentTree(t *testing.T) {
	dir := t.TempDir()
	buildTree(t, dir)

	report, err := Check(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Documents)
	assert.Empty(t, report.Problems, "a freshly saved tree should have no findings")
	assert.Greater(t, report.Links, 0)
	assert.Empty(t, report.Skipped)
}

func TestCheckMissingTarget(t *testing.T) {
	dir := t.TempDir()
	buildTree(t, dir)

	require.NoError(t, os.Remove(filepath.Join(dir, "maps", "dem.json")))

	report, err := Check(dir)
	require.NoError(t, err)
	require.NotEmpty(t, report.Problems)

	var hit bool
	for _, p := range report.Problems {
		if p.Href == "./maps/dem.json" && p.Reason == "target does not exist" {
			hit = true
		}
	}
	assert.True(t, hit, "the root catalog's dangling item link should be reported, got %v", report.Problems)
}

func TestCheckUnknownRel(t *testing.T) {
	dir := t.TempDir()

	doc := `{
  "type": "Catalog",
  "id": "odd",
  "links": [
    {"href": "odd.json", "rel": "sideways"}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "odd.json"), []byte(doc), 0o644))

	report, err := Check(dir)
	require.NoError(t, err)
	require.Len(t, report.Problems, 1)
	assert.Equal(t, "sideways", report.Problems[0].Rel)
	assert.Contains(t, report.Problems[0].Reason, "unknown rel")
}

func TestCheckSkipsSchemeQualified(t *testing.T) {
	dir := t.TempDir()

	doc := `{
  "type": "Catalog",
  "id": "remote",
  "links": [
    {"href": "remote.json", "rel": "self"},
    {"href": "https://example.com/catalog.json", "rel": "root"}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "remote.json"), []byte(doc), 0o644))

	report, err := Check(dir)
	require.NoError(t, err)
	assert.Empty(t, report.Problems)
	assert.Equal(t, []string{"https://example.com/catalog.json"}, report.Skipped)
}

func TestCheckAssetHrefs(t *testing.T) {
	dir := t.TempDir()

	doc := `{
  "type": "Feature",
  "id": "obs",
  "links": [
    {"href": "obs.json", "rel": "self"}
  ],
  "assets": {
    "data": {"href": "./obs.tif", "type": "image/tiff"}
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "obs.json"), []byte(doc), 0o644))

	report, err := Check(dir)
	require.NoError(t, err)
	require.Len(t, report.Problems, 1)
	assert.Equal(t, "./obs.tif", report.Problems[0].Href)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "obs.tif"), []byte("tiff"), 0o644))

	report, err = Check(dir)
	require.NoError(t, err)
	assert.Empty(t, report.Problems)
}

func TestCheckInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644))

	report, err := Check(dir)
	require.NoError(t, err)
	require.Len(t, report.Problems, 1)
	assert.Contains(t, report.Problems[0].Reason, "invalid JSON")
}

func TestCheckEmptyHref(t *testing.T) {
	dir := t.TempDir()

	doc := `{
  "type": "Catalog",
  "id": "blank",
  "links": [
    {"href": "", "rel": "self"}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blank.json"), []byte(doc), 0o644))

	report, err := Check(dir)
	require.NoError(t, err)
	require.Len(t, report.Problems, 1)
	assert.Equal(t, "empty href", report.Problems[0].Reason)
}

func TestCheckMissingDirectory(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
