// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, credential persistence, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - credentials/sqlite: Durable credential storage backed by SQLite
// - credentials/memory: Process-lifetime credential storage
// - http/standard: Standard library HTTP client that attaches the bearer
//   token to backend-origin requests only
// - logger/logrus: Structured logger built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Credential Stores
//
// SQLite store example:
//
//	store, err := sqlite.NewStore("openwiki.db")
//	if err != nil {
//	    // Handle error
//	}
//	defer store.Close()
//	err = store.Set(ctx, token)
//
// Memory store example:
//
//	store := memory.NewStore()
//	err := store.Set(ctx, token)
//
// # HTTP Client
//
// The HTTP client issues exactly one attempt per call; failure
// classification is left to the calling service:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, backendURL, store)
//	resp, err := client.Get(ctx, backendURL+"/api/users/me")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "user_id": "123",
//	    "action":  "load_articles",
//	})
package infrastructure
