package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/deepsolve"
	"github.com/hupe1980/deepsolve/core"
	"github.com/hupe1980/deepsolve/lm"
	lmanthropic "github.com/hupe1980/deepsolve/lm/anthropic"
	lmopenai "github.com/hupe1980/deepsolve/lm/openai"
	"github.com/hupe1980/deepsolve/logging"
	"github.com/hupe1980/deepsolve/planner"
	"github.com/hupe1980/deepsolve/reasoner"
	"github.com/hupe1980/deepsolve/resource"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
)

var (
	solveStatic    bool
	solveResources []string
	solveKnowledge []string
	solveTimeout   time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve \"<problem>\"",
	Short: "Answer a problem, decomposing it recursively when needed",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveStatic, "static", false, "execute the generated plan literally instead of dynamically")
	solveCmd.Flags().StringSliceVar(&solveResources, "resource", nil, "file to expose as an informational resource (repeatable, NAME=PATH or PATH)")
	solveCmd.Flags().StringSliceVar(&solveKnowledge, "knowledge", nil, "fact to seed the agent's knowledge with (repeatable)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 5*time.Minute, "overall solve timeout")
}

func runSolve(cmd *cobra.Command, args []string) error {
	problem := args[0]

	logger := buildLogger()
	model, err := buildLM(logger)
	if err != nil {
		return err
	}

	resources := make([]core.Resource, 0, len(solveResources))
	for _, spec := range solveResources {
		overview := "Local document"
		path := spec
		if name, p, ok := strings.Cut(spec, "="); ok {
			overview = fmt.Sprintf("Local document %q", name)
			path = p
		}
		resources = append(resources, resource.NewFileResource(path, overview, model))
	}

	agent := deepsolve.New(
		reasoner.New(model, func(o *reasoner.Options) { o.Logger = logger }),
		func(o *deepsolve.Options) {
			o.Planner = planner.New(model, func(po *planner.Options) {
				po.MaxDepth = viper.GetInt("max-depth")
				po.Logger = logger
			})
			o.Resources = resources
			o.Knowledge = solveKnowledge
			o.Logger = logger
		},
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "Problem: %s\n\n", problem)

	answer, err := agent.Solve(ctx, problem, nil, !solveStatic)
	if err != nil {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "solve failed: %v\n", err)
		return err
	}

	color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), "Answer:")
	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

// buildLM constructs the configured provider's language model.
func buildLM(logger logging.Logger) (lm.LM, error) {
	provider := viper.GetString("provider")
	modelID := viper.GetString("model")

	switch provider {
	case "openai":
		return lmopenai.New(func(o *lmopenai.Options) {
			if modelID != "" {
				o.Model = modelID
			}
			o.Logger = logger
		}), nil
	case "anthropic":
		return lmanthropic.New(func(o *lmanthropic.Options) {
			if modelID != "" {
				o.Model = anthropicsdk.Model(modelID)
			}
			o.Logger = logger
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want openai or anthropic)", provider)
	}
}

func buildLogger() logging.Logger {
	level := logging.LogLevelWarn
	switch viper.GetString("log-level") {
	case "debug":
		level = logging.LogLevelDebug
	case "info":
		level = logging.LogLevelInfo
	case "error":
		level = logging.LogLevelError
	}
	return logging.NewSlogLogger(level, "text", false)
}
