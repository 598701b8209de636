package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/chat"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/config"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/gateway"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/observability"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/profile"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/speech"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/store"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	dataDir := cfg.DataDir
	if dataDir == "" {
		var err error
		dataDir, err = store.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("resolving data directory: %w", err)
		}
	}

	observability.Init(dataDir)
	log := observability.Logger()

	var st store.Store
	var closer interface{ Close() error }
	if cfg.UseMockGateway {
		st = store.NewMemory()
	} else {
		db, err := store.Open(dataDir)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		st = db
		closer = db
	}

	var gw gateway.Client
	if cfg.UseMockGateway {
		gw = gateway.NewMock()
	} else {
		if cfg.APIKey == "" {
			return fmt.Errorf("no API key configured; set DOT_API_KEY or GEMINI_API_KEY")
		}
		g, err := gateway.NewGemini(context.Background(), cfg.APIKey, cfg.FastModel, cfg.QualityModel, cfg.ImageModel)
		if err != nil {
			return fmt.Errorf("creating gateway: %w", err)
		}
		gw = g
	}

	orc := chat.NewOrchestrator(gw, st)
	profiles := profile.NewManager(st)

	log.Info("starting", "dataDir", dataDir, "mock", cfg.UseMockGateway)

	p := ui.NewProgram(ui.Deps{
		Orchestrator: orc,
		Profiles:     profiles,
		Recognizer:   speech.System(),
		ImageDir:     filepath.Join(dataDir, "images"),
	})
	_, runErr := p.Run()

	if closer != nil {
		_ = closer.Close()
	}
	return runErr
}
