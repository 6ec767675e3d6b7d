// SPDX-License-Identifier: MIT

// Command checkout prints the best darts checkout for a score, exports the
// full checkout chart, or serves the HTTP API.
//
//	checkout -score 99
//	checkout -score 150 -darts 2 -doubles D16,D8
//	checkout -chart csv -out chart.csv
//	checkout -serve -addr :8080
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"

	"github.com/katalvlaran/checkout/chart"
	"github.com/katalvlaran/checkout/checkout"
	"github.com/katalvlaran/checkout/server"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defaults := checkout.DefaultPreferences()

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	score := fs.Int("score", 0, "remaining score to check out (2-170)")
	doubles := fs.String("doubles", strings.Join(defaults.FavoriteDoubles, ","), "favourite doubles, comma separated")
	triples := fs.String("triples", strings.Join(defaults.FavoriteTriples, ","), "favourite triples, comma separated")
	darts := fs.Int("darts", checkout.MaxDarts, "darts left in the visit (1-3)")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	chartFmt := fs.String("chart", "", "print the full chart: text|csv|html|json")
	out := fs.String("out", "", "write the chart to this file instead of stdout")
	serve := fs.Bool("serve", false, "serve the HTTP API")
	addr := fs.String("addr", ":8080", "listen address")
	publicURL := fs.String("public-url", "", "URL encoded by /api/qr (default: request host)")
	levelStr := fs.String("log-level", "info", "debug|info|warn|error")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "checkout version %s\n", version)
		return 0
	}

	logger := newLogger(stderr, *levelStr)

	prefs := checkout.Preferences{
		FavoriteDoubles: checkout.ParseLabels(*doubles),
		FavoriteTriples: checkout.ParseLabels(*triples),
	}
	if err := prefs.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid preferences: %v\n", err)
		return 2
	}

	switch {
	case *serve:
		cfg := server.DefaultConfig()
		cfg.Addr = *addr
		cfg.PublicURL = *publicURL
		cfg.Preferences = prefs
		cfg.MaxDarts = *darts
		srv, err := server.New(cfg, logger)
		if err != nil {
			logger.Error("config", "err", err)
			return 2
		}
		if err := srv.ListenAndServe(ctx); err != nil {
			logger.Error("server error", "err", eris.ToString(err, false))
			return 1
		}
		return 0

	case *chartFmt != "":
		if err := writeChart(ctx, stdout, *out, *chartFmt, prefs, *darts, logger); err != nil {
			fmt.Fprintf(stderr, "chart: %v\n", err)
			return 1
		}
		return 0

	case *score != 0:
		res := checkout.Solve(*score, prefs, checkout.WithMaxDarts(*darts), checkout.WithLogger(logger))
		if *asJSON {
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				fmt.Fprintf(stderr, "encode: %v\n", err)
				return 1
			}
		} else {
			printResult(stdout, res)
		}
		if res.Impossible {
			return 1
		}
		return 0

	default:
		fs.Usage()
		return 2
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// printResult renders a single solve for the terminal.
func printResult(w io.Writer, res checkout.Result) {
	switch {
	case res.Impossible:
		fmt.Fprintf(w, "%d: %s\n", res.Score, res.Explanation)
		return
	case res.IsSetup:
		fmt.Fprintf(w, "%d: setup %s\n", res.Score, strings.Join(res.Labels(), " "))
	default:
		fmt.Fprintf(w, "%d: %s (%d darts)\n", res.Score, strings.Join(res.Labels(), " "), res.DartsUsed)
	}
	for _, st := range res.Path {
		fmt.Fprintf(w, "  %-4s -> %d\n", st.Label, st.Remaining)
	}
	fmt.Fprintf(w, "\n%s\n", res.Explanation)
	for _, ms := range res.MissScenarios {
		fmt.Fprintf(w, "\n%s\n", ms.Description)
	}
}

func writeChart(ctx context.Context, stdout io.Writer, path, format string,
	prefs checkout.Preferences, darts int, logger *slog.Logger) error {
	c, err := chart.Build(ctx, prefs, chart.WithMaxDarts(darts), chart.WithLogger(logger))
	if err != nil {
		return err
	}

	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "creating %s", path)
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(format) {
	case "text":
		return c.WriteText(w)
	case "csv":
		return c.WriteCSV(w)
	case "html":
		return c.WriteHTML(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	default:
		return eris.Errorf("unknown format %q", format)
	}
}
