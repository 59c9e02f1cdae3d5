package main

import (
	"context"
	"io"

	"github.com/fwojciec/ideaminer"
	"github.com/rs/zerolog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger
	Runs   ideaminer.ReportWriter
	Finder ideaminer.IdeaFinder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mine   MineCmd   `cmd:"" help:"Mine a bookmarks file for weekend-buildable project ideas"`
	Detect DetectCmd `cmd:"" help:"Show the auto-detected Chrome bookmarks file"`
	Top    TopCmd    `cmd:"" help:"Show top ideas from the most recent mining run"`
}

// MineCmd is the "mine" subcommand.
type MineCmd struct {
	Source    string `short:"s" default:"chrome" enum:"chrome,html,xbel" help:"Bookmark export format"`
	File      string `short:"f" type:"path" help:"Path to bookmarks file (overrides auto-detection)"`
	Buildable bool   `short:"b" help:"Only keep weekend-buildable ideas (score >= 0.6)"`
	Output    string `short:"o" default:"." type:"path" help:"Output directory for reports"`
	Format    string `default:"all" enum:"json,markdown,sqlite,all" help:"Report format"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct{}

// TopCmd is the "top" subcommand.
type TopCmd struct {
	Limit    int    `short:"n" default:"10" help:"Number of ideas to show"`
	Category string `short:"c" help:"Only show ideas in this category"`
	All      bool   `help:"Include ideas below the weekend-feasibility threshold"`
}
