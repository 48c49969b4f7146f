package borrowcell

// Module version, also broken out numerically for programmatic checks.
const (
	Version = "0.1.0"

	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// Info describes the module at run time.
type Info struct {
	Version string
	Model   string // the checking model the primitives implement
	Tracing bool   // whether lifecycle tracing is active
}

// GetInfo returns the module version and current trace state.
func GetInfo() Info {
	return Info{
		Version: Version,
		Model:   "runtime borrow checking (single-thread)",
		Tracing: TraceEnabled(),
	}
}
