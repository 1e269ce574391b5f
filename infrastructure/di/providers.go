// Package di hand-wires the mapper's dependency graph: config, logger,
// the in-memory knowledge base, and the swhw.Mapper sitting on top of
// it. Grounded on infrastructure/di/providers.go's provider-function
// style, trimmed to the providers this module actually needs (no AWS
// clients, no repositories, no event bus: spec §1 excludes persistence
// and distributed operation).
package di

import (
	"hyperkb/domain/kb"
	"hyperkb/domain/swhw"
	"hyperkb/infrastructure/config"
	"hyperkb/pkg/logging"

	"go.uber.org/zap"
)

// ProvideLogger builds the zap logger for cfg.Environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Environment)
}

// ProvideGraph builds the empty knowledge base graph the mapper runs
// against. Fixture loading (populating it with concepts/facts) happens
// after the container is assembled, not inside the provider, so the
// same container can be reused across fixtures in tests.
func ProvideGraph() *kb.Graph {
	return kb.NewGraph()
}

// ProvideMapper builds the swhw.Mapper bound to graph, installing the
// component/software/hardware/resource vocabularies as a side effect of
// swhw.New.
func ProvideMapper(graph *kb.Graph) *swhw.Mapper {
	return swhw.New(graph)
}
