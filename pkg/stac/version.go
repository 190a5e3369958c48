package stac

// Version is the release version of this module.
const Version = "0.1.0"

// DefaultSpecVersion is the stac_version value stamped on nodes unless
// overridden per library or per node.
const DefaultSpecVersion = "1.0.0"
