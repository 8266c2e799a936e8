package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/internhub/match-engine/internal/logger"
	"github.com/internhub/match-engine/internal/match"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var prompt = promptui.Select{
	Label: "Embedding is enabled and will call the remote API for every applicant. Proceed?",
	Items: []string{PromptYes, PromptNo},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a directory of applicants against a listing",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("listing", "l", "", "path to a listing JSON file")
	rankCmd.Flags().StringP("applicants", "A", "", "directory with applicant JSON files")
	rankCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before remote embedding calls")
	rankCmd.MarkFlagRequired("listing")
	rankCmd.MarkFlagRequired("applicants")
}

func rank(cmd *cobra.Command) {
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

	candidates, err := loadCandidates(cmd.Flag("applicants").Value.String())
	if err != nil {
		logger.Fatal("loading applicants", zap.Error(err))
	}

	if len(candidates) == 0 {
		logger.Info("exiting", zap.String("reason", "no applicant files found"))
		return
	}

	logger.Info("loaded applicants", zap.Int("count", len(candidates)))

	if embeddingEnabled(config) && cmd.Flag("auto-approve").Value.String() == "false" {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if action == PromptNo {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	engine, err := buildEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the engine", zap.Error(err))
	}

	ranked, err := engine.Rank(ctx, listing, candidates)
	if err != nil {
		logger.Fatal("ranking applicants", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		logger.Fatal("rendering the result", zap.Error(err))
	}

	fmt.Println(string(pretty))
}

// loadCandidates reads every *.json file in dir. The candidate id is the
// file name without the extension.
func loadCandidates(dir string) ([]match.Candidate, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing applicant files: %w", err)
	}

	sort.Strings(paths)

	candidates := make([]match.Candidate, 0, len(paths))
	for _, path := range paths {
		applicant, err := loadApplicant(path)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, match.Candidate{
			ID:        strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Applicant: applicant,
		})
	}

	return candidates, nil
}
