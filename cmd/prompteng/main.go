// prompteng runs the prompt engineering examples against the Gemini API.
//
// Usage:
//
//	prompteng list
//	prompteng run                    # run every example in order
//	prompteng run extraction dials   # run selected examples
//	prompteng run --parallel 3       # run with bounded parallelism
//
// The API key comes from GEMINI_API_KEY (a .env file is honored). Settings
// can be given as flags or in a YAML file via --config.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
	"github.com/RyanGertz/gemini-prompt-engineering/tasks"
)

func main() {
	if err := createApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func createApp() *cli.Command {
	return &cli.Command{
		Name:  "prompteng",
		Usage: "prompt engineering examples for the Gemini API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "model to use for all calls",
			},
			&cli.IntFlag{
				Name:  "max-retries",
				Usage: "attempt ceiling for throttled calls",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "debug logging",
			},
		},
		Commands: []*cli.Command{
			createListCommand(),
			createRunCommand(),
		},
		DefaultCommand: "list",
	}
}

func createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list the available examples",
		Action: func(_ context.Context, _ *cli.Command) error {
			for _, t := range tasks.All() {
				fmt.Printf("%-18s %s\n", t.Name, t.Summary)
			}
			return nil
		},
	}
}

func createRunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run examples (all of them when no names are given)",
		ArgsUsage: "[task...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "run up to N examples at once instead of sequentially",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			log := setupLogging(cfg.Verbose)

			selected := tasks.All()
			if names := cmd.Args().Slice(); len(names) > 0 {
				selected, err = tasks.Lookup(names...)
				if err != nil {
					return err
				}
			}

			client, err := prompting.NewClient(ctx,
				prompting.WithLogger(log),
				prompting.WithDefaultModel(prompting.Model(cfg.Model)),
				prompting.WithRetrier(prompting.NewRetrier(
					prompting.RetryConfig{MaxAttempts: cfg.MaxRetries},
					prompting.WithRetryLogger(log),
				)),
			)
			if err != nil {
				return err
			}

			fmt.Println("Prompt Engineering Examples")
			fmt.Println("============================================================")

			var succeeded int
			if parallel := cmd.Int("parallel"); parallel > 1 {
				succeeded = tasks.RunConcurrent(ctx, client, selected, parallel, os.Stdout)
			} else {
				pause := time.Duration(cfg.PauseSecs) * time.Second
				succeeded = tasks.RunAll(ctx, client, selected, pause, os.Stdout)
			}

			fmt.Println("\n============================================================")
			fmt.Printf("Successfully ran %d/%d examples\n", succeeded, len(selected))
			if succeeded < len(selected) {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// resolveConfig loads the YAML config (if any) and overlays the flags.
// A .env file in the working directory is loaded first so GEMINI_API_KEY
// can live there during development.
func resolveConfig(cmd *cli.Command) (config, error) {
	_ = godotenv.Load()

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return cfg, err
	}
	if m := cmd.String("model"); m != "" {
		cfg.Model = m
	}
	if r := cmd.Int("max-retries"); r > 0 {
		cfg.MaxRetries = r
	}
	if cmd.Bool("verbose") {
		cfg.Verbose = true
	}
	return cfg, nil
}

func setupLogging(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(log)
	return log
}
