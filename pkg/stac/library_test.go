package stac

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalworks/stac/pkg/vocab"
)

func TestLibraryDefaults(t *testing.T) {
	lib, err := New("/data/catalogs")
	require.NoError(t, err)

	assert.Equal(t, "/data/catalogs", lib.Directory())
	assert.Equal(t, DefaultSpecVersion, lib.SpecVersion())
	assert.NotNil(t, lib.Filesystem())
	assert.Empty(t, lib.Objects())
}

func TestLibraryConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("stac_version: 0.9.0\n"), 0o644))

	lib, err := New("/data/catalogs",
		WithFilesystem(memfs.New()),
		WithConfigFile(cfgPath))
	require.NoError(t, err)
	assert.Equal(t, "0.9.0", lib.SpecVersion())

	cat, err := lib.NewCatalog("first_cat", "/", "root")
	require.NoError(t, err)
	assert.Equal(t, "0.9.0", cat.SpecVersion())
}

func TestLibraryConfigFileMissing(t *testing.T) {
	_, err := New("/data/catalogs",
		WithFilesystem(memfs.New()),
		WithConfigFile("/nonexistent/config.yaml"))
	assert.Error(t, err)
}

func TestLibrarySpecVersionPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("stac_version: 0.9.0\n"), 0o644))

	lib, err := New("/data/catalogs",
		WithFilesystem(memfs.New()),
		WithConfigFile(cfgPath),
		WithDefaultSpecVersion("1.1.0"))
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", lib.SpecVersion(), "explicit option beats the config file")
}

func TestLibrarySaveWritesDocuments(t *testing.T) {
	fs := memfs.New()
	lib, err := New("/data/catalogs", WithFilesystem(fs))
	require.NoError(t, err)

	cat, err := lib.NewCatalog("first_cat", "/", "the first catalog")
	require.NoError(t, err)
	_, err = lib.NewCollection("first_coll", "/first_cat/first_coll", "the first collection",
		vocab.LicenseCCBY40, WorldExtent(), WithParent(cat))
	require.NoError(t, err)
	_, err = lib.NewItem("1st_item", "/first_cat", nil, nil, WithParent(cat))
	require.NoError(t, err)

	require.NoError(t, lib.Save())

	for _, docPath := range []string{
		"/first_cat.json",
		"/first_cat/first_coll/first_coll.json",
		"/first_cat/1st_item.json",
	} {
		raw, err := util.ReadFile(fs, docPath)
		require.NoError(t, err, "document %s should exist", docPath)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc), "document %s should parse", docPath)
	}

	raw, err := util.ReadFile(fs, "/first_cat.json")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "    \"type\": \"Catalog\"", "documents are four-space indented")
}

func TestLibrarySaveOverwrites(t *testing.T) {
	fs := memfs.New()
	lib, err := New("/data/catalogs", WithFilesystem(fs))
	require.NoError(t, err)

	cat, err := lib.NewCatalog("first_cat", "/", "root")
	require.NoError(t, err)
	require.NoError(t, lib.Save())

	cat.SetTitle("Renamed")
	require.NoError(t, lib.Save())

	raw, err := util.ReadFile(fs, "/first_cat.json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Renamed", doc["title"])
}

func TestLibrarySaveContinuesPastFailure(t *testing.T) {
	fs := memfs.New()
	lib, err := New("/data/catalogs", WithFilesystem(fs))
	require.NoError(t, err)

	bad, err := lib.NewCatalog("bad", "/", "will not marshal")
	require.NoError(t, err)
	bad.AddExtension("https://example.com/ext.json", map[string]any{
		"broken": make(chan int),
	})
	_, err = lib.NewCatalog("good", "/", "saves fine")
	require.NoError(t, err)

	err = lib.Save()
	assert.Error(t, err)
	assert.ErrorContains(t, err, "marshal")

	raw, readErr := util.ReadFile(fs, "/good.json")
	require.NoError(t, readErr, "the failing sibling must not block this document")
	assert.Contains(t, string(raw), `"good"`)
}

func TestLibraryTreeOutput(t *testing.T) {
	var out bytes.Buffer
	lib, err := New("/data/catalogs",
		WithFilesystem(memfs.New()),
		WithTreeOutput(&out))
	require.NoError(t, err)

	cat, err := lib.NewCatalog("first_cat", "/", "the first catalog")
	require.NoError(t, err)
	_, err = lib.NewCollection("first_coll", "/first_cat/first_coll", "the first collection",
		vocab.LicenseCCBY40, WorldExtent(), WithParent(cat))
	require.NoError(t, err)
	_, err = lib.NewItem("1st_item", "/first_cat", nil, nil, WithParent(cat))
	require.NoError(t, err)

	require.NoError(t, lib.Tree())

	assert.Equal(t,
		"Root directory: /data/catalogs\n"+
			"\t Catalog first_cat : /first_cat.json\n"+
			"\t Collection first_coll : /first_cat/first_coll/first_coll.json\n"+
			"\t Feature 1st_item : /first_cat/1st_item.json\n",
		out.String())
}

func TestLibraryRegistrationOrder(t *testing.T) {
	lib := testLibrary(t)

	cat, err := lib.NewCatalog("first_cat", "/", "root")
	require.NoError(t, err)
	_, err = lib.NewItem("b_item", "/first_cat", nil, nil, WithParent(cat))
	require.NoError(t, err)
	_, err = lib.NewItem("a_item", "/first_cat", nil, nil, WithParent(cat))
	require.NoError(t, err)

	var ids []string
	for _, n := range lib.Objects() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"first_cat", "b_item", "a_item"}, ids)
}

func TestLibraryLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lib, err := New("/data/catalogs",
		WithFilesystem(memfs.New()),
		WithLogger(log))
	require.NoError(t, err)

	_, err = lib.NewCatalog("first_cat", "/", "root")
	require.NoError(t, err)
	require.NoError(t, lib.Save())

	logged := buf.String()
	assert.Contains(t, logged, "node registered")
	assert.Contains(t, logged, "document saved")
}
