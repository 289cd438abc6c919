package router

import (
	"context"

	"sccse-chatbot/pkg/log"
)

// Router runs the heuristic cascade over an incoming message.
type Router interface {
	Classify(ctx context.Context, in Input) RouterOutput
}

// HeuristicRouter classifies messages with the ordered keyword rules.
type HeuristicRouter struct {
	l     log.Logger
	rules []Rule
}

// Ensure HeuristicRouter implements Router interface
var _ Router = (*HeuristicRouter)(nil)

// New creates a HeuristicRouter over the default cascade.
func New(l log.Logger) *HeuristicRouter {
	return &HeuristicRouter{
		l:     l,
		rules: Rules(),
	}
}
