package entities

// ToolVersion is the version of rootbuild, compared against Settings.Requires.
//
//nolint:gochecknoglobals // overridden at link time
var ToolVersion = "v1.0.0"
