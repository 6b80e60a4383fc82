// Package version holds build metadata injected at link time.
package version

// These values are overridden with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent returns the User-Agent sent on outgoing HTTP requests
func UserAgent() string {
	return "QuickGen/" + Version
}
