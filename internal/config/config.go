// Package config loads environment configuration for the fitstack data layer.
package config

import (
	"os"
)

// Store backends selectable via STORE_BACKEND.
const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
)

type Config struct {
	Environment string

	// StoreBackend selects the document-store binding: firestore (default)
	// or postgres.
	StoreBackend string

	// Firestore settings
	FirestoreProjectID   string
	FirestoreCredentials string // optional service-account file; ADC otherwise

	// Postgres settings
	DatabaseURL string

	// CollectionPrefix namespaces collections per environment
	CollectionPrefix string

	// Debug enables debug-level logging
	Debug bool
}

// Load reads configuration from the environment.
func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Environment:          env,
		StoreBackend:         getEnv("STORE_BACKEND", BackendFirestore),
		FirestoreProjectID:   getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreCredentials: getEnv("FIRESTORE_CREDENTIALS_FILE", ""),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		CollectionPrefix:     getEnv("COLLECTION_PREFIX", getCollectionPrefix(env)),
		Debug:                getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getCollectionPrefix returns the collection prefix based on environment.
// Production collections are unprefixed; dev and test get their own
// namespaces so environments can share a project.
func getCollectionPrefix(env string) string {
	switch env {
	case "prod":
		return ""
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
