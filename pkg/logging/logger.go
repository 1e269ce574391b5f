// Package logging provides the zap logger construction used
// throughout the module, split out of the teacher's inline
// ProvideLogger so it can be unit-tested and reused by cmd/mapper
// without pulling in the dependency-injection container.
package logging

import "go.uber.org/zap"

// New builds a zap.Logger appropriate for environment: "production"
// gets the JSON production config, anything else gets the
// development config (console-friendly, debug level).
//
// Grounded on infrastructure/di/providers.go's ProvideLogger.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
