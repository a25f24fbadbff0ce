package server

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type invariantRoute struct {
	route     string
	invariant sdk.Invariant
}

// invariantRegistry collects the invariants asserted before every commit.
type invariantRegistry struct {
	routes []invariantRoute
}

var _ sdk.InvariantRegistry = (*invariantRegistry)(nil)

func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes = append(r.routes, invariantRoute{
		route:     moduleName + "/" + route,
		invariant: invar,
	})
}

// Routes returns the registered routes in registration order.
func (r *invariantRegistry) Routes() []string {
	routes := make([]string, 0, len(r.routes))
	for _, ir := range r.routes {
		routes = append(routes, ir.route)
	}
	return routes
}

// assert runs every registered invariant and fails on the first broken one.
func (r *invariantRegistry) assert(ctx sdk.Context) error {
	for _, ir := range r.routes {
		if msg, broken := ir.invariant(ctx); broken {
			return fmt.Errorf("invariant %s broken: %s", ir.route, msg)
		}
	}
	return nil
}
