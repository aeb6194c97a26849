package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfm-labs/tidycharts/internal/charts"
	"github.com/mfm-labs/tidycharts/internal/config"
	"github.com/mfm-labs/tidycharts/internal/fetch"
	"github.com/mfm-labs/tidycharts/internal/logger"
)

// outputWriter is used for printing previews, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// setOutputWriter sets the output writer (used for testing)
func setOutputWriter(w io.Writer) {
	outputWriter = w
}

// resetOutputWriter resets output to stdout (used for testing)
func resetOutputWriter() {
	outputWriter = os.Stdout
}

// runChart is the shared scaffolding of the chart subcommands: load config,
// apply flag overrides, set up logging and the HTTP client, then hand a
// ready Deps to the job. The context is cancelled on SIGINT/SIGTERM.
func runChart(name string, job func(context.Context, charts.Deps) error) error {
	// The default config path is optional; an explicitly passed one must
	// exist.
	cfg, err := config.Load(GetConfigFile(), GetConfigFile() == "tidycharts.yaml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.OutputDir, overrides.NoFonts)

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			log.Warnw("received signal, aborting", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	client := fetch.NewClient(time.Duration(cfg.Datasets.TimeoutSeconds) * time.Second)

	log.Infow("starting chart job", "chart", name, "config", GetConfigFile())
	start := time.Now()

	deps := charts.Deps{
		Config: cfg,
		Log:    log,
		Client: client,
		Out:    outputWriter,
		Faces:  charts.LoadFaces(ctx, client, &cfg.Fonts, log),
	}

	if err := job(ctx, deps); err != nil {
		return fmt.Errorf("chart %s failed: %w", name, err)
	}

	log.Infow("chart job finished", "chart", name, "duration", time.Since(start).Round(time.Millisecond).String())
	return nil
}
