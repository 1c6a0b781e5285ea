package main

import (
	"log"
	"os"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/joho/godotenv"
	"github.com/rm-hull/noisy-dataset/cmd"
	"github.com/rm-hull/noisy-dataset/internal/batch"
	"github.com/spf13/cobra"
)

func main() {
	var cfg batch.Config

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:     "noisy-dataset",
		Long:    `Gaussian noise augmentation for image datasets`,
		Version: versioninfo.Short(),
	}

	augmentCmd := &cobra.Command{
		Use:   "augment [--input <path>] [--output <path>] [--comparison <path>] [--variance <v>]",
		Short: "Write a noisy copy and a side-by-side comparison of every image in a folder",
		Run: func(c *cobra.Command, _ []string) {
			if !c.Flags().Changed("variance") {
				variance, err := cmd.VarianceFromEnv("NOISE_VARIANCE", cfg.Variance)
				if err != nil {
					log.Fatal(err)
				}
				cfg.Variance = variance
			}
			if err := cmd.Augment(cfg); err != nil {
				log.Fatal(err)
			}
		},
	}

	augmentCmd.Flags().StringVar(&cfg.InputDir, "input", envOr("NOISE_INPUT_DIR", "./data/input"), "Path to folder of source images")
	augmentCmd.Flags().StringVar(&cfg.OutputDir, "output", envOr("NOISE_OUTPUT_DIR", "./data/noisy"), "Path to folder for noisy images")
	augmentCmd.Flags().StringVar(&cfg.ComparisonDir, "comparison", envOr("NOISE_COMPARISON_DIR", "./data/comparison"), "Path to folder for comparison images")
	augmentCmd.Flags().Float64Var(&cfg.Variance, "variance", batch.DefaultVariance, "Variance of the Gaussian noise, in the [0, 1] colour domain (env NOISE_VARIANCE)")

	rootCmd.AddCommand(augmentCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
