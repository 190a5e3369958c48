// Package vocab holds the enumerated vocabularies used by catalog
// documents: hyperlink relation kinds, media kinds, SPDX license
// identifiers, and provider/asset roles. Each vocabulary pairs typed
// string constants with a lookup from the raw wire value. Lookups never
// default: an unrecognized token is always an error.
package vocab
