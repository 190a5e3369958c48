package vocab

// MediaKind is the content-type classification attached to a link or
// asset.
type MediaKind string

// Document kinds used on links between catalog documents. Catalog and
// collection documents share the same wire value.
const (
	MediaKindItem       MediaKind = "application/geo+json"
	MediaKindCatalog    MediaKind = "application/json"
	MediaKindCollection MediaKind = "application/json"
)

// Asset kinds commonly attached to geospatial assets.
const (
	MediaKindGeoTIFF    MediaKind = "image/tiff; application=geotiff"
	MediaKindCOG        MediaKind = "image/tiff; application=geotiff; profile=cloud-optimized"
	MediaKindJPEG2000   MediaKind = "image/jp2"
	MediaKindPNG        MediaKind = "image/png" // visual PNGs, e.g. thumbnails
	MediaKindJPEG       MediaKind = "image/jpeg"
	MediaKindTextXML    MediaKind = "text/xml"
	MediaKindJSON       MediaKind = "application/json"
	MediaKindText       MediaKind = "text/plain"
	MediaKindGeoJSON    MediaKind = "application/geo+json"
	MediaKindGeoPackage MediaKind = "application/geopackage+sqlite3"
	MediaKindHDF5       MediaKind = "application/x-hdf5"
	MediaKindHDF4       MediaKind = "application/x-hdf" // HDF versions 4 and earlier
)

// General web media kinds accepted on links and assets.
const (
	MediaKindHTML       MediaKind = "text/html"
	MediaKindCSV        MediaKind = "text/csv"
	MediaKindCSS        MediaKind = "text/css"
	MediaKindXML        MediaKind = "application/xml"
	MediaKindPDF        MediaKind = "application/pdf"
	MediaKindZip        MediaKind = "application/zip"
	MediaKindZstd       MediaKind = "application/zstd"
	MediaKindJavaScript MediaKind = "application/javascript"
	MediaKindLDJSON     MediaKind = "application/ld+json"
	MediaKindSVG        MediaKind = "image/svg+xml"
	MediaKindGIF        MediaKind = "image/gif"
	MediaKindWebP       MediaKind = "image/webp"
	MediaKindAPNG       MediaKind = "image/apng"
	MediaKindAVIF       MediaKind = "image/avif"
	MediaKindMPEGAudio  MediaKind = "audio/mpeg"
	MediaKindOggAudio   MediaKind = "audio/ogg"
)

// validMediaKinds is the set of recognized media kinds across the
// document, asset, and general groups.
var validMediaKinds = map[MediaKind]bool{
	MediaKindItem:       true,
	MediaKindCatalog:    true,
	MediaKindGeoTIFF:    true,
	MediaKindCOG:        true,
	MediaKindJPEG2000:   true,
	MediaKindPNG:        true,
	MediaKindJPEG:       true,
	MediaKindTextXML:    true,
	MediaKindText:       true,
	MediaKindGeoPackage: true,
	MediaKindHDF5:       true,
	MediaKindHDF4:       true,
	MediaKindHTML:       true,
	MediaKindCSV:        true,
	MediaKindCSS:        true,
	MediaKindXML:        true,
	MediaKindPDF:        true,
	MediaKindZip:        true,
	MediaKindZstd:       true,
	MediaKindJavaScript: true,
	MediaKindLDJSON:     true,
	MediaKindSVG:        true,
	MediaKindGIF:        true,
	MediaKindWebP:       true,
	MediaKindAPNG:       true,
	MediaKindAVIF:       true,
	MediaKindMPEGAudio:  true,
	MediaKindOggAudio:   true,
}

// LookupMediaKind returns the media kind for a raw token.
func LookupMediaKind(token string) (MediaKind, error) {
	k := MediaKind(token)
	if !validMediaKinds[k] {
		return "", &UnknownValueError{Vocabulary: "MediaKind", Value: token}
	}
	return k, nil
}
