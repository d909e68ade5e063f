package version

// Set at link time with -ldflags "-X".
var (
	Version  = "0.0.0-dev"
	Revision = "unknown"
)
