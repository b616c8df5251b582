// Package xapi provides the XML API transport used to synchronize
// configuration trees against a live device. The core treats a Transport
// as an opaque capability: every method either returns the parsed response
// document or an error, and errors are never retried here.
package xapi

import (
	"context"

	"github.com/antchfx/xmlquery"
)

// Transport is the device management API contract. Implementations return
// the parsed <response> document on success and a *panerr.RemoteError (or a
// connection error) otherwise. Timeouts are transport configuration; the
// callers above pass context through opaquely.
type Transport interface {
	// Op executes an operational command, scoped to a vsys when non-empty
	Op(ctx context.Context, cmd, vsys string) (*xmlquery.Node, error)
	// Get reads candidate configuration at xpath
	Get(ctx context.Context, xpath string) (*xmlquery.Node, error)
	// Show reads running configuration at xpath
	Show(ctx context.Context, xpath string) (*xmlquery.Node, error)
	// Set upserts element at xpath: creates if absent, merges if present
	Set(ctx context.Context, xpath, element string) (*xmlquery.Node, error)
	// Edit replaces the node at xpath with element
	Edit(ctx context.Context, xpath, element string) (*xmlquery.Node, error)
	// Delete removes the node at xpath; a missing node is a remote error
	// and surfaces verbatim
	Delete(ctx context.Context, xpath string) (*xmlquery.Node, error)
}
