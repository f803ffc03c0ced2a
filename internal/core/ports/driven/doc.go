// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TableStore: Reads unit tables (TOML files)
//   - SourceRenderer: Renders a table as Go source
//   - SourceWriter: Reads and writes generated files
//
// # Optional Interfaces
//
// This can be nil; watch mode is then unavailable:
//
//   - TableWatcher: Notifies on table edits (fsnotify)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
