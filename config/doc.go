// Package config defines the client configuration for the Dataverse API
// and helpers to load it from the environment or a YAML file.
//
// Config is built once, validated, and shared read-only by every endpoint
// wrapper; nothing in the client mutates it after construction.
//
//	cfg, err := config.FromEnv()
//	if err != nil { ... }
//	client, err := dataverse.NewClient(cfg)
//
// Environment variables use the DATAVERSE_ prefix (DATAVERSE_BASE_URL,
// DATAVERSE_API_KEY, ...). A .env file in the working directory is picked
// up automatically when present.
package config
