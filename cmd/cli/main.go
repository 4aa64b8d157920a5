// ABOUTME: Main entry point for the OpenWiki terminal client
// ABOUTME: Wires configuration, credential storage and services, then starts the shell

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"openwiki-client/core/account"
	"openwiki-client/core/collection"
	"openwiki-client/core/download"
	"openwiki-client/core/interfaces"
	"openwiki-client/core/session"
	"openwiki-client/core/wikipedia"
	memorycreds "openwiki-client/infrastructure/credentials/memory"
	sqlitecreds "openwiki-client/infrastructure/credentials/sqlite"
	stdhttp "openwiki-client/infrastructure/http/standard"
	logruslogger "openwiki-client/infrastructure/logger/logrus"
	"openwiki-client/pkg/config"
)

var (
	version   string
	buildDate string
)

func main() {
	var (
		configPath string
		showVer    bool
	)
	flag.StringVar(&configPath, "config", "", "path to YAML configuration file")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("OpenWiki Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(cfg.LogLevel)
	logger.Info("Starting OpenWiki client", map[string]interface{}{
		"backend":          cfg.Backend.URL,
		"language":         cfg.Wikipedia.Language,
		"credential_store": cfg.Credentials.Store,
	})

	// Create credential store
	var credentials interfaces.CredentialStore
	switch cfg.Credentials.Store {
	case "sqlite":
		store, err := sqlitecreds.NewStore(cfg.Credentials.Path)
		if err != nil {
			logger.Error("Failed to open credential database, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			credentials = memorycreds.NewStore()
		} else {
			defer store.Close()
			credentials = store
		}
	default:
		credentials = memorycreds.NewStore()
	}

	// Create the shared HTTP gateway; the bearer token is attached only to
	// backend-origin requests
	httpClient := stdhttp.NewStandardHTTPClient(
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
		cfg.Backend.URL,
		credentials,
	)

	deps := interfaces.Dependencies{
		HTTPClient:  httpClient,
		Credentials: credentials,
		Logger:      logger,
	}

	// Create services
	sessions := session.NewService(deps, cfg.Backend.URL)
	guard := session.NewGuard(sessions)
	accounts := account.NewService(deps, cfg.Backend.URL, sessions)
	articles := collection.NewService(deps, cfg.Backend.URL)
	encyclopedia := wikipedia.NewService(deps)
	downloads := download.NewService(deps, cfg.Backend.URL)

	// Resolve any stored credential into a session before the first prompt
	if err := sessions.Revalidate(context.Background()); err != nil {
		logger.Warn("Stored credential rejected, starting signed out", map[string]interface{}{
			"error": err.Error(),
		})
	}

	shell := newShell(shellServices{
		sessions:     sessions,
		guard:        guard,
		accounts:     accounts,
		articles:     articles,
		encyclopedia: encyclopedia,
		downloads:    downloads,
	}, cfg, os.Stdin, os.Stdout)
	shell.run()
}
