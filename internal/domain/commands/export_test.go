package commands

// DescribeUpgrade exports describeUpgrade for testing.
var DescribeUpgrade = describeUpgrade //nolint:gochecknoglobals // test export

// IsNewerVersion exports isNewerVersion for testing.
var IsNewerVersion = isNewerVersion //nolint:gochecknoglobals // test export
