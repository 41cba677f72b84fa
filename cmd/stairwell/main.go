package main

import (
	"flag"
	"fmt"
	"os"

	"Stairwell/internal/config"
	"Stairwell/internal/engine"
	"Stairwell/internal/logger"
	"Stairwell/internal/scene"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "stairwell.toml", "path to the TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logger.Log.Error("Stairwell failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(configPath string) error {
	logger.Init()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Development); err != nil {
		return err
	}

	meshes, err := engine.BuildMeshes(cfg.Shapes)
	if err != nil {
		return err
	}
	for kind, buf := range meshes {
		logger.Log.Debug("Mesh built",
			zap.Stringer("kind", kind),
			zap.Int("vertices", buf.VertexCount()),
			zap.Int("triangles", buf.TriangleCount()))
	}

	app, err := engine.New(cfg, engine.Scene{
		Meshes:    meshes,
		Instances: scene.DefaultLayout().Instances(),
		Lighting:  scene.DefaultLighting(),
	})
	if err != nil {
		return err
	}
	return app.Run()
}
