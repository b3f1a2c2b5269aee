// main.go
//
// Entry point for the gabble command.
//
// Subcommands:
//   - play:  interactive terminal game (see play.go).
//   - serve: JSON HTTP API (see serve.go).
//   - words: load the configured dictionary and print counts.
//
// Configuration comes from defaults, an optional YAML file (--config) and the
// environment (a local .env file is loaded first).

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/gabble/internal/config"
	"github.com/robalobadob/gabble/internal/game"
	"github.com/robalobadob/gabble/internal/words"
)

// Version is set at build time.
var Version = "dev"

// app holds the root command and the state shared by subcommands.
type app struct {
	root       *cobra.Command
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	cfg        *config.Config
	now        func() time.Time
}

func newApp() *app {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
	}
	a.root = &cobra.Command{
		Use:           "gabble",
		Short:         "Five-letter word guessing game",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.setupLogging()
			return nil
		},
	}
	a.root.PersistentFlags().StringVarP(&a.configPath, "config", "c", os.Getenv("GABBLE_CONFIG"), "Path to YAML configuration file")

	a.root.AddCommand(
		a.newPlayCmd(),
		a.newServeCmd(),
		a.newWordsCmd(),
		a.newVersionCmd(),
	)
	return a
}

// withIO replaces the standard streams (tests).
func (a *app) withIO(in io.Reader, out, errOut io.Writer) *app {
	a.stdin, a.stdout, a.stderr = in, out, errOut
	a.root.SetIn(in)
	a.root.SetOut(out)
	a.root.SetErr(errOut)
	return a
}

func (a *app) execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// setupLogging applies the logging section of the config to the global logger.
func (a *app) setupLogging() {
	lvl, err := zerolog.ParseLevel(strings.ToLower(a.cfg.Logging.Level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if a.cfg.Logging.Format == "json" {
		log.Logger = zerolog.New(a.stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.Kitchen})
}

// loadDictionary opens the configured word source.
func (a *app) loadDictionary(ctx context.Context) (*words.Dictionary, error) {
	dict, err := words.Open(ctx, a.cfg.WordsOptions())
	if err != nil {
		return nil, err
	}
	answers, allowed := dict.Stats()
	log.Debug().Int("answers", answers).Int("allowed", allowed).Msg("dictionary loaded")
	return dict, nil
}

// evaluator returns the feedback rule selected by the config.
func (a *app) evaluator() game.Evaluator {
	if a.cfg.Game.StrictFeedback {
		return game.EvaluateStrict
	}
	return game.Evaluate
}

func (a *app) newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Load the dictionary and print word counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.loadDictionary(cmd.Context())
			if err != nil {
				return err
			}
			answers, allowed := dict.Stats()
			fmt.Fprintf(a.stdout, "answers: %d\n", answers)
			fmt.Fprintf(a.stdout, "allowed: %d\n", allowed)
			return nil
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "gabble version %s\n", Version)
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp().execute(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("gabble")
		cancel()
		os.Exit(1)
	}
}
