package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across atelier.
const (
	// Identity
	FieldArtistID = "artist_id"
	FieldName     = "name"
	FieldKind     = "kind"

	// Domain
	FieldAward  = "award"
	FieldAwards = "awards"

	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Errors
	FieldError = "error"

	// Counts and config
	FieldCount       = "count"
	FieldConfigFiles = "config_files"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	r := &Roster{logger: logger.ComponentLogger("roster")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
