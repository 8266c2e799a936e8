package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/internhub/match-engine/internal/embedding"
	"github.com/internhub/match-engine/internal/embedding/gemini"
	"github.com/internhub/match-engine/internal/match"
	"github.com/internhub/match-engine/internal/secrets"
	"github.com/internhub/match-engine/internal/skills"
)

const (
	app = "match-engine"
)

type Config struct {
	AliasesFile string           `mapstructure:"aliases-file"`
	Scoring     *ScoringConfig   `mapstructure:"scoring"`
	Embedding   *EmbeddingConfig `mapstructure:"embedding"`
}

type ScoringConfig struct {
	FuzzyThreshold int            `mapstructure:"fuzzy-threshold"`
	Weights        *match.Weights `mapstructure:"weights"`
}

type EmbeddingConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "match-engine scores internship applicants against job listings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("embedding.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is match-engine.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The engine runs fine on defaults; only a malformed file is fatal.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// buildEngine assembles the scoring engine from configuration: alias table
// overlays, weights, fuzzy threshold and the embedding backend.
func buildEngine(ctx context.Context, config *Config, logger *zap.Logger) (*match.Engine, error) {
	cfg := match.Config{Logger: logger}

	if config == nil {
		config = &Config{}
	}

	if config.AliasesFile != "" {
		table, err := skills.Load(config.AliasesFile)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded skill alias overlay",
			zap.String("path", config.AliasesFile),
			zap.Int("aliases", table.Len()),
		)
		cfg.Table = table
	}

	if config.Scoring != nil {
		cfg.FuzzyThreshold = config.Scoring.FuzzyThreshold
		if config.Scoring.Weights != nil {
			cfg.Weights = *config.Scoring.Weights
		}
	}

	cfg.Provider = buildProvider(config.Embedding, logger)

	return match.New(cfg), nil
}

func buildProvider(cfg *EmbeddingConfig, logger *zap.Logger) embedding.Provider {
	if cfg == nil || !cfg.Enabled {
		logger.Info("embedding backend disabled, semantic components score 0.0")
		return embedding.Unavailable()
	}

	// Gemini is the only backend right now; the provider knob exists so a
	// config stays valid when more are added.
	geminiCfg := cfg.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	return embedding.NewLazyProvider(func(ctx context.Context) (embedding.Embedder, error) {
		apiKey, err := secrets.Load(secrets.Source{
			Name:  "gemini api key",
			Value: geminiCfg.APIKey,
			File:  geminiCfg.APIKeyFile,
		})
		if err != nil {
			return nil, err
		}
		return gemini.New(ctx, apiKey, geminiCfg.Model, logger)
	}, logger)
}

func embeddingEnabled(config *Config) bool {
	return config != nil && config.Embedding != nil && config.Embedding.Enabled
}
