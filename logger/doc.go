// Package logger provides structured logging for the Dataverse client,
// backed by zerolog.
//
// The client is a library, so logging is silent by default: a zero-value
// Logger (or Nop()) discards everything. Callers that want request-level
// visibility construct a Logger and pass it in via dataverse.WithLogger.
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "console"}, "dataverse")
//	client, _ := dataverse.NewClient(cfg, dataverse.WithLogger(log))
package logger
