package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/internhub/match-engine/internal/logger"
	"github.com/internhub/match-engine/internal/match"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single applicant against a listing",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("listing", "l", "", "path to a listing JSON file")
	scoreCmd.Flags().StringP("applicant", "a", "", "path to an applicant JSON file")
	scoreCmd.MarkFlagRequired("listing")
	scoreCmd.MarkFlagRequired("applicant")
}

func score(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the match-engine", zap.String("version", version))

	listing, err := loadListing(cmd.Flag("listing").Value.String())
	if err != nil {
		logger.Fatal("loading the listing", zap.Error(err))
	}

	applicant, err := loadApplicant(cmd.Flag("applicant").Value.String())
	if err != nil {
		logger.Fatal("loading the applicant", zap.Error(err))
	}

	engine, err := buildEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the engine", zap.Error(err))
	}

	result := engine.Score(ctx, listing, applicant)

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("rendering the result", zap.Error(err))
	}

	fmt.Println(string(pretty))
}

func loadListing(path string) (*match.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading listing file: %w", err)
	}

	var listing match.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("parsing listing file %s: %w", path, err)
	}

	return &listing, nil
}

func loadApplicant(path string) (*match.Applicant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading applicant file: %w", err)
	}

	var applicant match.Applicant
	if err := json.Unmarshal(data, &applicant); err != nil {
		return nil, fmt.Errorf("parsing applicant file %s: %w", path, err)
	}

	return &applicant, nil
}
