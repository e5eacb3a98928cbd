// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"io"
	"sort"

	"github.com/danielhkuo/prioritisation-matrix/handlers"
	"github.com/danielhkuo/prioritisation-matrix/middleware"
	"github.com/danielhkuo/prioritisation-matrix/models"
)

// Router maps command names to handlers
type Router struct {
	routes map[string]route
}

type route struct {
	handler middleware.HandlerFunc
	usage   string
}

func NewRouter(s *handlers.Session) *Router {
	r := &Router{routes: make(map[string]route)}

	// Initialize handlers
	itemHandler := handlers.NewItemHandler(s)
	comparisonHandler := handlers.NewComparisonHandler(s)
	resultsHandler := handlers.NewResultsHandler(s)
	wizardHandler := handlers.NewWizardHandler(s)

	// Item management
	r.Handle("add", "add <name>", middleware.WithLogging(itemHandler.Add))
	r.Handle("remove", "remove <id>", middleware.WithLogging(itemHandler.Remove))
	r.Handle("clear", "clear", middleware.WithLogging(itemHandler.Clear))

	// Comparisons, per variant
	if s.Config().Variant == models.VariantSequential {
		r.Handle("start", "start", middleware.WithLogging(wizardHandler.Start))
		r.Handle("pick", "pick <id>", middleware.WithLogging(wizardHandler.Pick))
		r.Handle("current", "current", middleware.WithLogging(wizardHandler.Current))
		r.Handle("restart", "restart", middleware.WithLogging(wizardHandler.Restart))
	} else {
		r.Handle("choose", "choose <row> <col> <winner>", middleware.WithLogging(comparisonHandler.Choose))
	}
	r.Handle("pairs", "pairs", middleware.WithLogging(comparisonHandler.Pairs))

	// Views
	r.Handle("matrix", "matrix", middleware.WithLogging(resultsHandler.Matrix))
	r.Handle("results", "results", middleware.WithLogging(resultsHandler.Results))
	r.Handle("status", "status [--json]", middleware.WithLogging(resultsHandler.Status))
	r.Handle("export", "export", middleware.WithLogging(resultsHandler.Export))

	r.Handle("help", "help", r.help)

	return r
}

// Handle registers a command
func (r *Router) Handle(name, usage string, h middleware.HandlerFunc) {
	r.routes[name] = route{handler: h, usage: usage}
}

// Has reports whether a command is registered
func (r *Router) Has(name string) bool {
	_, ok := r.routes[name]
	return ok
}

// Dispatch parses one input line and runs the matching handler.
// Blank lines are ignored.
func (r *Router) Dispatch(w io.Writer, line string) {
	cmd, ok := middleware.ParseCommand(line)
	if !ok {
		return
	}

	rt, found := r.routes[cmd.Name]
	if !found {
		middleware.ErrorResponse(w, "Unknown command "+cmd.Name+" (try help)")
		return
	}

	rt.handler(w, cmd)
}

func (r *Router) help(w io.Writer, cmd models.Command) {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)

	middleware.TextResponse(w, "Commands:")
	for _, name := range names {
		middleware.TextResponse(w, "  %s", r.routes[name].usage)
	}
	middleware.TextResponse(w, "  quit")
}
