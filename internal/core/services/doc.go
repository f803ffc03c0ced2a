// Package services implements the driving port interfaces.
// Services contain the generator's orchestration logic and call
// driven ports (adapters) for storage, rendering and watching.
//
// Services are pure Go with no CGO or external dependencies.
package services
