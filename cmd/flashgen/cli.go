package main

import (
	"context"
	"io"

	"github.com/fwojciec/flashgen"
)

// Dependencies holds the services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Runner flashgen.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate flashcards for a web page or video URL"`
	Serve    ServeCmd    `cmd:"" help:"Run the flashcard generation HTTP API"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL    string `arg:"" help:"Web page or video URL"`
	Cards  int    `short:"n" default:"5" help:"Number of flashcards to request"`
	Engine string `default:"goquery" enum:"goquery,readability" help:"Web extraction engine"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `default:":5000" env:"FLASHGEN_ADDR" help:"Listen address"`
	Engine string `default:"goquery" enum:"goquery,readability" help:"Web extraction engine"`
}
