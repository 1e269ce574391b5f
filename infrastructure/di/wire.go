//go:build wireinject
// +build wireinject

package di

import (
	"hyperkb/domain/kb"
	"hyperkb/domain/swhw"
	"hyperkb/infrastructure/config"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds everything cmd/mapper needs to run one scenario.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Graph  *kb.Graph
	Mapper *swhw.Mapper
}

// SuperSet is the provider set wire.Build assembles Container from.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideGraph,
	ProvideMapper,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container for cfg.
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // wire replaces this body with generated code
}
