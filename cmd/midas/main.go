package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/midas/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `kong:"short='c',default='midas.hcl',type='path',help='HCL configuration file'"`
	LogLevel string `kong:"default='warn',enum='debug,info,warn,error',help='Log level (debug, info, warn, error)'"`
	NoColor  bool   `kong:"help='Disable colored output'"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many games and summarise the results"`
	Play     PlayCmd          `cmd:"" help:"Play blackjack interactively"`
	Round    RoundCmd         `cmd:"" help:"Play a single round with the configured seats"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("midas"),
		kong.Description("Blackjack simulator for comparing playing and betting strategies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// Logger returns a stderr logger at the configured level
func (g *Globals) Logger() *log.Logger {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "midas",
	})
}

// LoadConfig reads and validates the configuration file
func (g *Globals) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// signalContext is cancelled on interrupt
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Warn("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// resolveSeed picks the first explicit seed, or a time based one
func resolveSeed(logger *log.Logger, flag *int64, configured int64) int64 {
	switch {
	case flag != nil:
		logger.Info("Using deterministic seed", "seed", *flag)
		return *flag
	case configured != 0:
		logger.Info("Using configured seed", "seed", configured)
		return configured
	default:
		seed := time.Now().UnixNano()
		logger.Info("Using random seed", "seed", seed)
		return seed
	}
}
