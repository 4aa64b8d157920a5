// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core client logic

package interfaces

// Dependencies holds all external dependencies required by the core client logic
type Dependencies struct {
	// HTTPClient provides HTTP request functionality for backend and
	// encyclopedia calls
	HTTPClient HTTPClient

	// Credentials owns the persisted bearer credential
	Credentials CredentialStore

	// Logger provides structured logging
	Logger Logger
}
