package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/hatenadl"
	"github.com/fwojciec/hatenadl/crawl"
	"github.com/fwojciec/hatenadl/fs"
	hatenahttp "github.com/fwojciec/hatenadl/http"
	hatenaslog "github.com/fwojciec/hatenadl/slog"
	"github.com/fwojciec/hatenadl/sqlite"
)

// Fallbacks applied after flags and the config file.
const (
	defaultRate        = 2.0
	defaultConcurrency = 4
)

// Run executes the "get" command: crawl the target URL, download its
// images, and record them in the archive.
func (c *GetCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	if cfg == nil {
		cfg = &FileConfig{}
	}

	dest := firstOf(c.Dest, cfg.Dest, ".")
	rate := firstPositive(c.Rate, cfg.Rate, defaultRate)
	concurrency := firstPositiveInt(c.Concurrency, cfg.Concurrency, defaultConcurrency)
	userAgent := firstOf(c.UserAgent, cfg.UserAgent, "")

	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	limiter := crawl.NewDomainLimiter(rate)

	var httpOpts []hatenahttp.Option
	if userAgent != "" {
		httpOpts = append(httpOpts, hatenahttp.WithUserAgent(userAgent))
	}
	client := hatenahttp.NewFetcher(httpOpts...)
	defer client.Close()

	var fetcher hatenadl.Fetcher = &crawl.RetryFetcher{
		Next: &crawl.LimitedFetcher{
			Next:    hatenaslog.NewLoggingFetcher(client, logger),
			Limiter: limiter,
		},
		Log: func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		},
	}
	var downloader hatenadl.Downloader = &crawl.RetryDownloader{
		Next: &crawl.LimitedDownloader{
			Next:    hatenaslog.NewLoggingDownloader(client, logger),
			Limiter: limiter,
		},
	}

	var archive hatenadl.Archive
	if !c.NoArchive {
		path := firstOf(c.Archive, cfg.Archive, filepath.Join(dest, "archive.db"))
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return fmt.Errorf("open archive %s: %w", path, err)
		}
		archive = hatenaslog.NewLoggingArchive(sqlite.NewArchiveService(db), logger)
		defer archive.Close()
	}

	runner := &crawl.Runner{
		Fetcher:     fetcher,
		Downloader:  downloader,
		Archive:     archive,
		Writer:      fs.NewWriter(dest),
		Concurrency: concurrency,
		MaxPages:    c.MaxPages,
		ListOnly:    c.ListOnly,
	}

	result, err := runner.Run(deps.Ctx, c.URL, func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressDirectory:
			fmt.Fprintf(deps.Stdout, "%s: %s\n", event.Path, event.Title)
		case crawl.ProgressDownloaded:
			fmt.Fprintf(deps.Stdout, "  + %s\n", event.Path)
		case crawl.ProgressListed:
			fmt.Fprintf(deps.Stdout, "  %s <- %s\n", event.Path, crawl.TruncateURL(event.URL, 60))
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  = %s (archived)\n", event.Path)
		case crawl.ProgressQueued:
			fmt.Fprintf(deps.Stdout, "  > %s\n", crawl.TruncateURL(event.URL, 60))
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d articles, %d images (%s), %d skipped, %d queued\n",
		result.Directories, result.Images, crawl.FormatBytes(result.Bytes),
		result.Skipped, result.Queued)
	return nil
}

// firstOf returns the first non-empty string.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstPositiveInt(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
