// Package core contains the business logic for the OpenWiki client.
// It is designed to be framework-agnostic and can be used independently
// of any terminal or UI concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (User, Article, DownloadTask, etc.)
// - session: Session resolution and revalidation against the backend
// - account: Registration, login and profile management
// - collection: The grouped view over the user's saved articles
// - wikipedia: Search and preview against the public encyclopedia API
// - download: The article download flow with overwrite confirmation
// - content: HTML sanitization policy and the structured editing codec
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, credentials, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "openwiki-client/core/collection"
//	    "openwiki-client/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient:  myHTTPClient,  // implements interfaces.HTTPClient
//	    Credentials: myCredentials, // implements interfaces.CredentialStore
//	    Logger:      myLogger,      // implements interfaces.Logger
//	}
//
//	// Create service
//	articles := collection.NewService(deps, "http://localhost:3000")
//
//	// Load the saved collection
//	err := articles.Load(ctx, "rome")
package core
