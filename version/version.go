package version

const (
	// SemVer is used as the fallback version of bytes-random-secure
	// when not using git describe. It uses semantic versioning format.
	SemVer = "1.0.0-dev"
)

// GitCommitHash uses git rev-parse HEAD to find commit hash which is helpful
// for the engineering team when working with the randbytes binary. See Makefile.
var GitCommitHash = ""
