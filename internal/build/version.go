package build

import "fmt"

// Set at link time with -ldflags "-X github.com/bornholm/civicadmin/internal/build.ShortVersion=..."
var (
	ShortVersion   = "0.0.0"
	ProjectVersion = "dev"
	GitRef         = "unknown"
	BuildDate      = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s - %s) - %s", ShortVersion, ProjectVersion, GitRef, BuildDate)
