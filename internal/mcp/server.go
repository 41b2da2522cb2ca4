package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/ftracker/internal/workout"
)

// New creates an MCP server with all tools and resources registered.
// lang is the summary language used when a tool call does not pick one.
func New(calc Calculator, lang workout.Language, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("ftracker", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("ftracker workout calculator. Compute distance, average speed and calories for swimming (SWM), running (RUN) and race walking (WLK) sensor packages."),
	)

	h := &handlers{calc: calc, lang: lang, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolComputeWorkout, Handler: h.computeWorkout},
		server.ServerTool{Tool: toolListWorkoutTypes, Handler: h.listWorkoutTypes},
	)

	s.AddResources(
		server.ServerResource{Resource: resWorkoutTypes, Handler: h.workoutTypes},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	calc Calculator
	lang workout.Language
	log  *slog.Logger
}

var resWorkoutTypes = mcp.NewResource(
	"ftracker://workout_types",
	"Workout Types",
	mcp.WithResourceDescription("Supported workout type codes with the positional fields each package carries"),
	mcp.WithMIMEType("application/json"),
)
