package mlkem

import "github.com/coinbase/cb-mlkem-go/pkg/mlkem/internal/backend"

var (
	Version     = "v0.0.0-in-progress"
	UpstreamSHA = "unknown"
	UpstreamDir = "github.com/cloudflare/circl"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the version of the lattice backend module linked
// into the binary if build information is available; otherwise it falls back
// to the pinned UpstreamSHA.
func UpstreamVersion() string {
	if v := backend.Version(); v != "" {
		return v
	}
	return UpstreamSHA
}
