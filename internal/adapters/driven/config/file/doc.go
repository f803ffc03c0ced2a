// Package file provides file-based implementations of driven port interfaces.
// These adapters read data from the local filesystem.
//
// Adapters:
//   - TableStore: TOML-based unit table storage
//   - SourceWriter: generated Go file persistence
package file
