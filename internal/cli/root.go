// Package cli wires the draftgate commands: review (full revision loop),
// check (single pass over an existing draft), batch, and config management.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/medpipe/draftgate/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "draftgate",
	Short: "Draftgate - release gating for AI-generated clinical procedure drafts",
	Long: `Draftgate is the quality-control stage of a clinical documentation
pipeline. It parses generated procedure drafts into cited sentence units,
binds extracted claims to supporting evidence, runs a fixed battery of
deterministic lint rules, and gates the result against release criteria.

Failing drafts are sent back for revision, bounded by an iteration limit and
a stall detector. Draftgate checks evidence support and document structure;
it does not judge clinical truth.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("draftgate v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.draftgate/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in the config file and DRAFTGATE_* environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.draftgate")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("DRAFTGATE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults with config-file and environment overrides.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("binder.min_score") {
		cfg.Binder.MinScore = viper.GetFloat64("binder.min_score")
	}
	if viper.IsSet("binder.max_links_per_claim") {
		cfg.Binder.MaxLinksPerClaim = viper.GetInt("binder.max_links_per_claim")
	}
	if viper.IsSet("review.max_iterations") {
		cfg.Review.MaxIterations = viper.GetInt("review.max_iterations")
	}
	if viper.IsSet("review.recency_window_years") {
		cfg.Review.RecencyWindowYears = viper.GetInt("review.recency_window_years")
	}
	if viper.IsSet("review.batch_concurrency") {
		cfg.Review.BatchConcurrency = viper.GetInt("review.batch_concurrency")
	}
	if viper.IsSet("drafter.provider") {
		cfg.Drafter.Provider = viper.GetString("drafter.provider")
	}
	if viper.IsSet("drafter.model") {
		cfg.Drafter.Model = viper.GetString("drafter.model")
	}
	if viper.IsSet("drafter.base_url") {
		cfg.Drafter.BaseURL = viper.GetString("drafter.base_url")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	cfg.Output.Verbose = verbose

	return cfg
}
