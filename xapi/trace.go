package xapi

import (
	"context"
	"log"
	"time"

	"github.com/imdario/mergo"
)

// unique type to prevent assignment.
type clientEventContextKey struct{}

// ContextClientTrace returns the Trace associated with the provided
// context. If none, it returns no-op hooks.
func ContextClientTrace(ctx context.Context) *ClientTrace {
	trace, _ := ctx.Value(clientEventContextKey{}).(*ClientTrace)
	if trace == nil {
		trace = NoOpLoggingHooks
	} else {
		_ = mergo.Merge(trace, NoOpLoggingHooks)
	}
	return trace
}

// WithClientTrace returns a new context based on the provided parent ctx.
// API requests made with the returned context will use the provided trace
// hooks.
func WithClientTrace(ctx context.Context, trace *ClientTrace) context.Context {
	return context.WithValue(ctx, clientEventContextKey{}, trace)
}

// ClientTrace defines a structure for handling trace events on the XML API
// transport.
type ClientTrace struct {
	// KeygenStart is called before requesting an API key for a user.
	KeygenStart func(hostname, username string)

	// KeygenDone is called when the API key request completes, with err
	// indicating whether it was successful.
	KeygenDone func(hostname, username string, err error, d time.Duration)

	// RequestStart is called before an API request is sent. action is the
	// API action (get, set, edit, delete, op, keygen); xpath is empty for
	// op commands.
	RequestStart func(action, xpath string)

	// RequestDone is called after an API request completes.
	RequestDone func(action, xpath string, err error, d time.Duration)

	// Error is called after an error condition has been detected.
	Error func(context, hostname string, err error)
}

// DefaultLoggingHooks provides a default logging hook to report errors.
var DefaultLoggingHooks = &ClientTrace{
	Error: func(context, hostname string, err error) {
		log.Printf("XAPI-Error context:%s host:%s err:%v\n", context, hostname, err)
	},
}

// DiagnosticLoggingHooks provides a set of hooks that log every request.
var DiagnosticLoggingHooks = &ClientTrace{
	KeygenDone: func(hostname, username string, err error, d time.Duration) {
		log.Printf("XAPI-KeygenDone host:%s user:%s err:%v took:%dms\n", hostname, username, err, d.Milliseconds())
	},
	RequestStart: func(action, xpath string) {
		log.Printf("XAPI-RequestStart action:%s xpath:%s\n", action, xpath)
	},
	RequestDone: func(action, xpath string, err error, d time.Duration) {
		log.Printf("XAPI-RequestDone action:%s xpath:%s err:%v took:%dms\n", action, xpath, err, d.Milliseconds())
	},

	Error: DefaultLoggingHooks.Error,
}

// NoOpLoggingHooks provides set of hooks that do nothing.
var NoOpLoggingHooks = &ClientTrace{
	KeygenStart:  func(hostname, username string) {},
	KeygenDone:   func(hostname, username string, err error, d time.Duration) {},
	RequestStart: func(action, xpath string) {},
	RequestDone:  func(action, xpath string, err error, d time.Duration) {},
	Error:        func(context, hostname string, err error) {},
}
