// vitals is a live terminal dashboard for host CPU and memory utilization.
//
// It samples /proc at a fixed 4 Hz cadence and renders severity-colored
// gauges, absolute memory usage, and scrolling sparkline history for each
// metric until interrupted.
//
// Usage:
//
//	vitals [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/vitals/config.yaml)
//	-interval dur     Sampling interval override (e.g. 250ms)
//	-history int      Samples kept per metric for sparklines
//	-width int        Gauge bar width in characters
//	-once             Render a single frame to stdout and exit
//	-log-file string  Write debug logs to file
//	-verbose          Enable debug logging
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/vitals/collectors"
	"gitlab.com/tinyland/lab/vitals/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/vitals/config"
	"gitlab.com/tinyland/lab/vitals/display/tui"
	"gitlab.com/tinyland/lab/vitals/engine"
	"gitlab.com/tinyland/lab/vitals/internal/format"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/vitals/config.yaml)")
		interval    = flag.Duration("interval", 0, "Sampling interval override (e.g. 250ms)")
		historySize = flag.Int("history", 0, "Samples kept per metric for sparklines")
		barWidth    = flag.Int("width", 0, "Gauge bar width in characters")
		once        = flag.Bool("once", false, "Render a single frame to stdout and exit")
		logFile     = flag.String("log-file", "", "Write debug logs to file")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vitals %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Configuration
	// ---------------------------------------------------------------

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vitals: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override the file.
	if *interval > 0 {
		cfg.Monitor.Interval = interval.String()
	}
	if *historySize > 0 {
		cfg.Monitor.HistorySize = *historySize
	}
	if *barWidth > 0 {
		cfg.Display.BarWidth = *barWidth
	}
	if *verbose {
		cfg.Logging.Verbose = true
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "vitals: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vitals: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tick, _ := cfg.TickInterval() // validated above

	// ---------------------------------------------------------------
	// Wiring: collector registry -> sample engine
	// ---------------------------------------------------------------

	registry := collectors.NewRegistry()
	registry.Register(sysmetrics.New(tick, logger))

	provider, _ := registry.Get("sysmetrics")
	eng := engine.NewSampleEngine(provider, engine.Config{
		HistorySize:   cfg.Monitor.HistorySize,
		BarWidth:      cfg.Display.BarWidth,
		ThresholdWarn: cfg.Display.ThresholdWarn,
		ThresholdCrit: cfg.Display.ThresholdCrit,
	}, logger)

	// ---------------------------------------------------------------
	// Context with signal handling
	// ---------------------------------------------------------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// ---------------------------------------------------------------
	// One-shot mode
	// ---------------------------------------------------------------

	if *once {
		if err := runOnce(ctx, os.Stdout, eng, tick); err != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "vitals: %v\n", err)
			os.Exit(1)
		}
		// Return, not os.Exit, so the deferred log close runs.
		return
	}

	// ---------------------------------------------------------------
	// Live dashboard
	// ---------------------------------------------------------------

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "vitals: stdout is not a terminal (use -once for plain output)")
		os.Exit(1)
	}

	fmt.Printf("Starting vitals %s, live system monitor (host up %s). Press q or Ctrl-C to exit.\n",
		version, format.Uptime(sysmetrics.Uptime()))

	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())

	go func() {
		<-sigChan
		cancel()
		p.Quit()
	}()

	sched := engine.NewScheduler(eng, tui.NewProgramRenderer(p), tick, logger)
	go func() {
		if err := sched.Run(ctx); err != nil {
			logger.Error("scheduler failed", "error", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "vitals: display error: %v\n", err)
		os.Exit(1)
	}
	cancel()

	fmt.Println("Monitoring stopped.")
}

// runOnce renders a single dashboard frame to w. The first CPU reading
// only seeds the delta counters, so a warm-up sample precedes the frame.
func runOnce(ctx context.Context, w io.Writer, eng *engine.SampleEngine, tick time.Duration) error {
	if _, err := eng.Sample(ctx); err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}
	time.Sleep(tick)

	model, err := eng.BuildDisplayModel(ctx)
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}
	fmt.Fprintln(w, tui.RenderDashboard(model))
	return nil
}

// buildLogger constructs the application logger from the logging config.
// Logs go to the configured file when set, to stderr in verbose mode, and
// are discarded otherwise (the alt-screen dashboard owns the terminal).
func buildLogger(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	var w io.Writer
	closeLog := func() {}

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	case cfg.Verbose:
		w = os.Stderr
	default:
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeLog, nil
}
