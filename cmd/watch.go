package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/gopatterns/internal/config"
	"github.com/conneroisu/gopatterns/internal/logging"
	"github.com/conneroisu/gopatterns/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Re-validate the docs whenever they change",
	Long: `Watch the docs directory and re-run validation after every change,
an authoring aid for editing pattern pages. Stop with Ctrl-C.`,
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond,
		"How long to wait for edits to settle before re-validating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(&logging.Config{
		Level:     logging.ParseLevel(cfg.Log.Level),
		Format:    cfg.Log.Format,
		Output:    os.Stderr,
		Component: "watch",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docsWatcher, err := watcher.NewDocsWatcher(watchDebounce)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer docsWatcher.Stop()

	docsWatcher.AddFilter(watcher.MarkdownFilter)
	docsWatcher.AddFilter(watcher.NoHiddenFilter)
	docsWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		for _, event := range events {
			logger.Debug(ctx, "docs changed", "path", event.Path, "type", event.Type.String())
		}
		collector, validateErr := validateDocs(cfg)
		if validateErr != nil {
			logger.Error(ctx, validateErr, "validation pass failed")
			return validateErr
		}
		if reportErr := reportValidation(collector); reportErr != nil {
			logger.Warn(ctx, reportErr, "documentation has problems")
		}
		return nil
	})

	if err := docsWatcher.AddPath(cfg.Docs.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Docs.Dir, err)
	}

	docsWatcher.Start(ctx)
	logger.Info(ctx, "watching docs", "dir", cfg.Docs.Dir, "debounce", watchDebounce.String())

	// Run one validation up front so the first feedback is immediate
	if collector, validateErr := validateDocs(cfg); validateErr == nil {
		if reportErr := reportValidation(collector); reportErr != nil {
			logger.Warn(ctx, reportErr, "documentation has problems")
		}
	}

	<-ctx.Done()
	logger.Info(context.Background(), "stopping watch")
	return nil
}
