package services

// JoinWithAnd exports joinWithAnd for testing.
var JoinWithAnd = joinWithAnd //nolint:gochecknoglobals // test export

// FromVersionMsg exports fromVersionMsg for testing.
var FromVersionMsg = fromVersionMsg //nolint:gochecknoglobals // test export

// PreviousVersion exports previousVersion for testing.
var PreviousVersion = previousVersion //nolint:gochecknoglobals // test export

// NewVersion exports newVersion for testing.
var NewVersion = newVersion //nolint:gochecknoglobals // test export

// SwitchingFromRefToRelease exports switchingFromRefToRelease for testing.
var SwitchingFromRefToRelease = switchingFromRefToRelease //nolint:gochecknoglobals // test export

// SecurityNotice exports securityNotice for testing.
var SecurityNotice = securityNotice //nolint:gochecknoglobals // test export

// AncestorListing exports ancestorListing for testing.
var AncestorListing = ancestorListing //nolint:gochecknoglobals // test export

// BuildTrailers exports buildTrailers for testing.
var BuildTrailers = buildTrailers //nolint:gochecknoglobals // test export

// ChangeLine exports changeLine for testing.
var ChangeLine = changeLine //nolint:gochecknoglobals // test export

// CapitalizeFirstWord exports capitalizeFirstWord for testing.
var CapitalizeFirstWord = capitalizeFirstWord //nolint:gochecknoglobals // test export

// NewLibraryRequirement exports newLibraryRequirement for testing.
var NewLibraryRequirement = newLibraryRequirement //nolint:gochecknoglobals // test export

// OldLibraryRequirement exports oldLibraryRequirement for testing.
var OldLibraryRequirement = oldLibraryRequirement //nolint:gochecknoglobals // test export
