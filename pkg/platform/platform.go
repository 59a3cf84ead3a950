// Package platform provides the fixed virtual paths and identifiers used when
// the engine runs inside a sandboxed WebAssembly host. Nothing here touches a
// real filesystem.
package platform

import (
	"path"

	"github.com/google/uuid"
)

const (
	// BinDirectory is the directory holding the module binary.
	BinDirectory = "/wasm"
	// BinPath is the virtual path of the module binary.
	BinPath = BinDirectory + "/lip-sync.wasm"
	// ResourcesPath is where recognition models are mounted.
	ResourcesPath = "/models"
	// TempDirectory is the virtual temp directory.
	TempDirectory = "/tmp"
)

// GenerateUUID returns a random RFC 4122 version 4 UUID string.
func GenerateUUID() string {
	return uuid.NewString()
}

// TempFilePath returns a unique path under TempDirectory. No file is created.
func TempFilePath() string {
	return path.Join(TempDirectory, GenerateUUID())
}
