package version

import (
	"fmt"
)

const (
	Version = "0.1"
)

// VersionString is printed by the command line tools.
var VersionString = fmt.Sprintf("Go-AffineTransform %s", Version)
