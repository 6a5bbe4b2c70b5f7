package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "deepsolve",
	Short: "Recursive problem-solving agent",
	Long: `DeepSolve answers open natural-language questions by combining a direct
reasoning step with bounded recursive decomposition of hard problems into
sub-problems.

Given a problem, the agent first attempts a direct answer; when its reasoner
is not confident, the planner breaks the problem into ordered sub-questions,
solves them one by one (later sub-questions see earlier answers), and
synthesizes the results into a final answer. Recursion depth is capped by an
explicit budget, never by problem complexity.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .deepsolve.yaml)")
	rootCmd.PersistentFlags().String("provider", "openai", "language model provider (openai, anthropic)")
	rootCmd.PersistentFlags().String("model", "", "model id override for the chosen provider")
	rootCmd.PersistentFlags().Int("max-depth", 2, "maximum recursive decomposition depth")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	for _, key := range []string{"provider", "model", "max-depth", "log-level"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "flag binding failed: %v\n", err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".deepsolve")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("DEEPSOLVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; a malformed one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
			os.Exit(1)
		}
	}
}
