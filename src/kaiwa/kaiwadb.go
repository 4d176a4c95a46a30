package kaiwa

import (
	"fmt"

	"go.uber.org/zap"

	"kaiwadb/src/document"
	"kaiwadb/src/engine"
	"kaiwadb/src/settings"
)

// KaiwaDB is the declarative entry point: it owns a schema registry and the
// backend target those definitions are written against. Connecting to that
// backend and executing queries belong to engine implementations outside
// this module.
type KaiwaDB struct {
	engine   engine.Engine
	registry *document.Registry
	logger   *zap.SugaredLogger
}

// New builds a KaiwaDB handle from settings, initializing logging and an
// empty schema registry.
func New(config *settings.Settings) (*KaiwaDB, error) {
	target := engine.Engine(config.Engine)
	if !target.Valid() {
		return nil, fmt.Errorf("unknown engine %q", config.Engine)
	}

	var logger *zap.Logger
	var err error

	if config.Debug {
		// Development configuration with more verbose output
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = outputPaths(config)
		logger, err = z.Build()
	} else {
		// Production configuration
		z := zap.NewProductionConfig()
		z.OutputPaths = outputPaths(config)
		if config.Verbose {
			z.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		logger, err = z.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Create a sugared logger for easier API
	sugar := logger.Sugar()

	db := &KaiwaDB{
		engine:   target,
		registry: document.NewRegistry(sugar),
		logger:   sugar,
	}

	sugar.Infow("kaiwadb initialized", "engine", target.String())
	return db, nil
}

func outputPaths(config *settings.Settings) []string {
	var paths []string
	if config.PrintToScreen {
		paths = append(paths, "stdout")
	}
	if config.LogFile != "" {
		paths = append(paths, config.LogFile)
	}
	if len(paths) == 0 {
		paths = []string{"stderr"}
	}
	return paths
}

// Engine returns the backend target the definitions are written against.
func (k *KaiwaDB) Engine() engine.Engine {
	return k.engine
}

// Registry returns the schema registry owned by this handle.
func (k *KaiwaDB) Registry() *document.Registry {
	return k.registry
}

// Definitions returns every schema definition registered on this handle.
func (k *KaiwaDB) Definitions() []*document.Definition {
	return k.registry.Definitions()
}
