package main

import (
	"context"
	"io"
)

// Dependencies holds shared services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *FileConfig // nil when no config file exists
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Get    GetCmd    `cmd:"" help:"Crawl a HatenaBlog URL and download its images"`
	Routes RoutesCmd `cmd:"" help:"Show the recognized URL shapes"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URL         string  `arg:"" help:"Target URL (entry, home, archive or search page)"`
	Dest        string  `short:"d" help:"Destination directory (default: current directory)"`
	Archive     string  `help:"Archive database path (default: <dest>/archive.db)"`
	NoArchive   bool    `help:"Disable the download archive"`
	ListOnly    bool    `short:"l" help:"List items without downloading"`
	Rate        float64 `help:"Max requests per second per domain (default: 2)"`
	Concurrency int     `short:"c" help:"Concurrent entry fetch limit (default: 4)"`
	MaxPages    int     `help:"Stop after this many page fetches (0 = unlimited)"`
	UserAgent   string  `help:"Custom User-Agent header"`
	Verbose     bool    `short:"v" help:"Enable debug logging"`
}

// RoutesCmd is the "routes" subcommand.
type RoutesCmd struct{}
