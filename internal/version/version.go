package version

import "fmt"

// Build information for the goifd binary. Release builds stamp it with
//
//	go build -ldflags "-X github.com/alexiusacademia/goifd/internal/version.Version=0.2.0 \
//	  -X github.com/alexiusacademia/goifd/internal/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/alexiusacademia/goifd/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" -o goifd .
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// Stamped reports whether the binary was built with commit information
func Stamped() bool {
	return GitCommit != "unknown"
}

// String returns the one-line version shown by `goifd version`
func String() string {
	if !Stamped() {
		return fmt.Sprintf("goifd v%s", Version)
	}
	return fmt.Sprintf("goifd v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
