package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blackwell-systems/bundlescope/internal/output"
	"github.com/blackwell-systems/bundlescope/internal/scanner"
	"github.com/blackwell-systems/bundlescope/internal/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-analyze whenever the build output changes",
	Long: `Watch a build output directory and re-run the analysis after each build
settles. Every run is recorded in the history database, so a watch session
leaves a size trail you can review with 'bundlescope history'.

A bundler writing many chunks in one build triggers a single re-analysis:
changes are debounced until the directory goes quiet.

Requires --dist; stats-file input has no change events to watch.`,
	Example: `  # Re-analyze on every build
  bundlescope watch --dist ./dist

  # Slower debounce for bundlers with long write phases
  bundlescope watch --dist ./dist --debounce 2s`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before re-analysis")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if distDir == "" {
		return fmt.Errorf("--dist is required for watch mode")
	}
	if statsPath != "" {
		return fmt.Errorf("--stats cannot be watched; use --dist")
	}

	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()

	runOnce := func() {
		facts, err := scanner.ScanDist(distDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: scan failed: %v\n", err)
			return
		}

		// Each build is a fresh analysis; the cached report describes
		// the previous output.
		a.ClearCache()
		report := a.Analyze(ctx, facts)

		fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), output.RenderReportSummary(report))
		fmt.Println(output.RenderSavingsFooter(report))

		if _, err := st.InsertReport(report); err != nil {
			fmt.Fprintf(os.Stderr, "watch: run not recorded: %v\n", err)
		}
	}

	w, err := watcher.New(distDir, watchDebounce, runOnce)
	if err != nil {
		return err
	}

	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Printf("Watching %s (debounce %s). Press Ctrl-C to stop.\n", distDir, watchDebounce)

	// Analyze the current output immediately so the first build isn't
	// invisible until something changes.
	runOnce()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	fmt.Fprintf(os.Stderr, "received signal %v, shutting down...\n", sig)

	return w.Stop()
}
