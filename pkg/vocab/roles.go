package vocab

// ProviderRole describes how an organization participated in producing a
// collection.
type ProviderRole string

const (
	RoleLicensor  ProviderRole = "licensor"  // licenses the dataset
	RoleProducer  ProviderRole = "producer"  // captured and processed the source data
	RoleProcessor ProviderRole = "processor" // processed data to a derived product
	RoleHost      ProviderRole = "host"      // offers the data on its storage; at most one, listed last
)

var validProviderRoles = map[ProviderRole]bool{
	RoleLicensor:  true,
	RoleProducer:  true,
	RoleProcessor: true,
	RoleHost:      true,
}

// LookupProviderRole returns the provider role for a raw token.
func LookupProviderRole(token string) (ProviderRole, error) {
	r := ProviderRole(token)
	if !validProviderRoles[r] {
		return "", &UnknownValueError{Vocabulary: "ProviderRole", Value: token}
	}
	return r, nil
}

// AssetRole describes the purpose of an asset within an item or
// collection.
type AssetRole string

const (
	AssetRoleThumbnail AssetRole = "thumbnail" // small true-color preview image
	AssetRoleOverview  AssetRole = "overview"  // larger view than the thumbnail
	AssetRoleData      AssetRole = "data"      // the data itself
	AssetRoleMetadata  AssetRole = "metadata"  // sidecar file describing the data
	AssetRoleVisual    AssetRole = "visual"    // full-resolution version processed for display
	AssetRoleDate      AssetRole = "date"      // per-pixel acquisition timestamps
	AssetRoleGraphic   AssetRole = "graphic"   // supporting plot or illustration
	AssetRoleDataMask  AssetRole = "data-mask" // valid/invalid pixel indicator
	AssetRoleSnowIce   AssetRole = "snow-ice"  // snow or ice pixel assessment
	AssetRoleLandWater AssetRole = "land-water"
	AssetRoleWaterMask AssetRole = "water-mask"
	AssetRoleISO19115  AssetRole = "iso-19115" // ISO 19115 metadata file
)

var validAssetRoles = map[AssetRole]bool{
	AssetRoleThumbnail: true,
	AssetRoleOverview:  true,
	AssetRoleData:      true,
	AssetRoleMetadata:  true,
	AssetRoleVisual:    true,
	AssetRoleDate:      true,
	AssetRoleGraphic:   true,
	AssetRoleDataMask:  true,
	AssetRoleSnowIce:   true,
	AssetRoleLandWater: true,
	AssetRoleWaterMask: true,
	AssetRoleISO19115:  true,
}

// LookupAssetRole returns the asset role for a raw token.
func LookupAssetRole(token string) (AssetRole, error) {
	r := AssetRole(token)
	if !validAssetRoles[r] {
		return "", &UnknownValueError{Vocabulary: "AssetRole", Value: token}
	}
	return r, nil
}
