// Package stac builds static, file-based catalogs of geospatial
// metadata. Clients construct a tree of catalog, collection, and item
// nodes through a Library; each node derives its hyperlink relations
// (root, self, parent, child/item) as relative paths from its position
// in the tree, and the Library broadcasts save and tree events that
// serialize every node to a JSON document mirroring the tree layout on
// disk.
package stac
