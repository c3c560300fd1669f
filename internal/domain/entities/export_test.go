package entities

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export
