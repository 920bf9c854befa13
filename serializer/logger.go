package serializer

import (
	"go.uber.org/zap"

	"schema-serializer/internal/logging"
)

// SetLogger installs the logger used by schemas and fields and returns a
// function restoring the previous one. Nothing is logged by default.
func SetLogger(l *zap.Logger) func() {
	return logging.Replace(l)
}
