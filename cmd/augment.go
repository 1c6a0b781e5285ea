package cmd

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/rm-hull/noisy-dataset/internal"
	"github.com/rm-hull/noisy-dataset/internal/batch"
	"github.com/rm-hull/noisy-dataset/internal/render"
	"github.com/rm-hull/noisy-dataset/internal/storage"
)

func Augment(cfg batch.Config) error {
	internal.ShowVersion()
	internal.UserInfo()
	internal.EnvironmentVars("NOISE_")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	items, err := batch.Discover(cfg.InputDir)
	if err != nil {
		return err
	}

	store, err := storage.NewDirStorage(cfg.OutputDir, cfg.ComparisonDir)
	if err != nil {
		return err
	}

	log.Printf("Found %d images in %s (variance=%g)", len(items), cfg.InputDir, cfg.Variance)
	log.Println(strings.Repeat("=", 50))

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	orchestrator := batch.NewOrchestrator(cfg.Variance, render.NewComparisonRenderer(cfg.Variance), store, rng)
	summary := orchestrator.Run(items)

	log.Println(strings.Repeat("=", 50))
	log.Printf("Finished in %s", summary.Elapsed)
	log.Printf("Images found:      %d", summary.Total)
	log.Printf("Noisy images:      %d (saved in %s)", summary.Processed, cfg.OutputDir)
	log.Printf("Comparison images: %d (saved in %s)", summary.ComparisonsRendered, cfg.ComparisonDir)
	return nil
}

// VarianceFromEnv returns the variance held in the named environment
// variable, or fallback when it is unset.
func VarianceFromEnv(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a number: %w", key, value, err)
	}
	return f, nil
}
