package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/ftracker/internal/mcp"
	"github.com/meltforce/ftracker/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "ftracker server URL for remote mode (e.g. https://ftracker.tail1234.ts.net); empty computes locally")
	apiKey := flag.String("api-key", os.Getenv("FTRACKER_AUTH_API_KEY"), "API key for the remote server")
	lang := flag.String("lang", "en", "default summary language: en or ru")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("ftracker-mcp", Version)
		return
	}

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	language, err := workout.ParseLanguage(*lang)
	if err != nil {
		log.Error("invalid language", "error", err)
		os.Exit(1)
	}

	var calc mcp.Calculator = mcp.Local{}
	if *serverURL != "" {
		calc = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	}

	s := mcp.New(calc, language, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server stopped", "error", err)
		os.Exit(1)
	}
}
