package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcao2/reviews-browser/internal/browse"
	"github.com/mcao2/reviews-browser/internal/config"
	"github.com/mcao2/reviews-browser/internal/demo"
	"github.com/mcao2/reviews-browser/internal/logging"
	"github.com/mcao2/reviews-browser/internal/reviews"
	"github.com/mcao2/reviews-browser/internal/ui"
)

type options struct {
	appID   string
	baseURL string
	theme   string
	logFile string
	verbose bool
	demo    bool
	json    bool
}

// session bundles what every command needs once flags are parsed.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	client *reviews.Client
	close  func()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "reviews-browser",
		Short: "Browse app reviews in the terminal",
		Long: `reviews-browser fetches the reviews of an app from a reviews backend
(GET /api/reviews_by_app?app_id=ID) and shows them as cards with star
ratings and summary statistics.

Run without arguments to start the interactive browser.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.close()
			return runBrowser(cmd.Context(), s, opts.appID)
		},
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Reviews backend URL (or set REVIEWS_API_URL)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write JSON logs to this file (or set REVIEWS_LOG_FILE)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.demo, "demo", false, "Serve canned reviews from a built-in demo backend")
	root.Flags().StringVar(&opts.appID, "app-id", "", "Load this app's reviews on start")
	root.Flags().StringVar(&opts.theme, "theme", "", "Color theme (default, catppuccin, dracula, nord, gruvbox)")

	root.AddCommand(newInitCmd())
	root.AddCommand(newFetchCmd(opts))
	return root
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an example config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.SaveExampleConfig()
			if err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n", path)
			return nil
		},
	}
}

func newFetchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch APP_ID",
		Short: "Fetch reviews once and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.close()
			return runFetch(cmd.Context(), s.client, args[0], opts.json, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the reviews and summary as JSON")
	return cmd
}

// openSession loads config, applies flag overrides and builds the logger
// and client. With --demo the client points at an in-process backend.
func openSession(opts *options) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}

	logger, err := logging.New(cfg.LogFile, opts.verbose)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger}
	closers := []func(){func() { _ = logger.Sync() }}

	if opts.demo {
		srv, err := demo.Start(logger.Named("demo"))
		if err != nil {
			return nil, err
		}
		cfg.BaseURL = srv.URL()
		cfg.QuickApps = append(append([]config.QuickApp{}, demo.QuickApps...), cfg.QuickApps...)
		closers = append(closers, func() {
			if err := srv.Close(); err != nil {
				logger.Warn("demo shutdown", zap.Error(err))
			}
		})
	}

	s.client = reviews.NewClient(
		reviews.WithBaseURL(cfg.BaseURL),
		reviews.WithTimeout(cfg.RequestTimeout),
		reviews.WithLogger(logger.Named("client")),
	)
	s.close = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	logger.Info("session ready",
		zap.String("base_url", s.client.BaseURL()),
		zap.Duration("timeout", cfg.RequestTimeout),
		zap.Bool("demo", opts.demo),
	)
	return s, nil
}

func runBrowser(ctx context.Context, s *session, appID string) error {
	m := ui.NewModel(ui.Options{
		Config:       s.cfg,
		Fetcher:      s.client,
		Logger:       s.logger.Named("ui"),
		InitialAppID: appID,
	})

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer (clears terminal)
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	_, err := p.Run()
	return err
}

// runFetch performs one fetch through the same state transitions as the
// interactive browser and prints the result.
func runFetch(ctx context.Context, f ui.Fetcher, appID string, asJSON bool, w io.Writer) error {
	state, req, err := browse.New().Submit(appID)
	if err != nil {
		return fmt.Errorf("%s: %w", browse.MessageInvalidID, err)
	}

	list, fetchErr := f.FetchByApp(ctx, req.AppID)
	state, _ = state.Resolve(req.Seq, list, fetchErr)
	if state.Phase == browse.PhaseFailed {
		return fmt.Errorf("%s: %w", state.Message, state.Cause)
	}

	if asJSON {
		data, err := ui.BuildExportJSON(state.CommittedID, state.Reviews)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, data)
		return nil
	}

	summary, ok := state.Summary()
	if !ok {
		fmt.Fprintln(w, "No reviews found for this app.")
		return nil
	}

	labels := make([]string, len(summary.Distribution))
	for i, b := range summary.Distribution {
		labels[i] = b.Label()
	}
	fmt.Fprintf(w, "App: %s\n", state.CommittedID)
	fmt.Fprintf(w, "Total Reviews: %d\n", summary.Count)
	fmt.Fprintf(w, "Average Rating: %s\n", summary.AverageLabel())
	fmt.Fprintf(w, "Distribution: %s\n", strings.Join(labels, ", "))

	for _, r := range state.Reviews {
		fmt.Fprintln(w, "\n---")
		fmt.Fprint(w, ui.NewCard(r, time.Local).Text())
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
