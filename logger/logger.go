package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of a batch conversion.
var ProgressLogger = log.New(os.Stderr, "affinetransform.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like invalid
// input lines or non finite decomposition results.
var WarningLogger = log.New(os.Stderr, "affinetransform.warning: ", log.Lmsgprefix)
