package models

// BuildInfo carries the ldflags-injected build metadata shown in the UI and
// printed on startup.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}
