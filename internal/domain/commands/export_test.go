package commands

// ResolveBuildDir exports resolveBuildDir for testing.
var ResolveBuildDir = resolveBuildDir //nolint:gochecknoglobals // test export

// IsWithin exports isWithin for testing.
var IsWithin = isWithin //nolint:gochecknoglobals // test export
