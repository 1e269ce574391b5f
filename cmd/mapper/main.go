// Command mapper is a demo CLI collaborator over the two entry points
// named in spec §6: generate-implementation-networks and
// map-software-to-hardware. It is not the wire protocol itself — §6 is
// explicit that the core has no such protocol — just one illustrative
// caller that loads a fixture, runs one operation, and reports the
// result the way the spec's exit-code convention describes.
//
// Grounded on cmd/api/main.go's config-load -> container-init -> run ->
// log shape, with the HTTP server and graceful-shutdown machinery
// removed: this is a single synchronous batch computation (spec §5),
// not a long-running service.
package main

import (
	"fmt"
	"log"
	"os"

	"hyperkb/domain/kb"
	"hyperkb/domain/software"
	"hyperkb/infrastructure/config"
	"hyperkb/infrastructure/di"
	"hyperkb/internal/fixture"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <generate-implementation-networks|map-software-to-hardware>", os.Args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
	defer func() {
		if err := container.Logger.Sync(); err != nil {
			log.Printf("failed to sync logger: %v", err)
		}
	}()

	switch os.Args[1] {
	case "generate-implementation-networks":
		os.Exit(runEnumeration(container))
	case "map-software-to-hardware":
		os.Exit(runMapping(container))
	default:
		log.Fatalf("unknown entry point %q", os.Args[1])
	}
}

func runEnumeration(container *di.Container) int {
	fixture.Enumeration(container.Graph)

	sn := software.New(container.Graph)
	if sn.Algorithms("").Empty() || sn.G.IsA(kb.NewUIDSet(sn.Vocab.Implementation), kb.INVERSE).Empty() {
		container.Logger.Error("no algorithm instances or no implementation classes present")
		return 1
	}

	networks, err := software.GenerateAllImplementationNetworksCapped(container.Graph, container.Config.MaxCandidateNetworks)
	if err != nil {
		container.Logger.Error("implementation network enumeration aborted", zap.Error(err))
		return 2
	}
	container.Logger.Info("generated implementation networks",
		zap.Int("count", len(networks)))
	fmt.Println(len(networks))
	return 0
}

func runMapping(container *di.Container) int {
	fixture.Mapping(container.Graph)

	if container.Mapper.SW.Implementations("").Empty() || container.Mapper.HW.Processors("").Empty() {
		container.Logger.Error("no implementation instances or no processor instances present")
		return 1
	}

	cost, assignments, err := container.Mapper.Map()
	if err != nil {
		container.Logger.Error("mapping aborted by invariant violation", zap.Error(err))
		return 2
	}

	mapped := 0
	for _, a := range assignments {
		if a.Mapped {
			mapped++
		}
	}
	container.Logger.Info("mapping complete",
		zap.Int("assigned", mapped),
		zap.Int("unmapped", len(assignments)-mapped),
		zap.Float64("global_cost", cost))
	fmt.Printf("%.4f\n", cost)

	return int(cost * 100)
}
