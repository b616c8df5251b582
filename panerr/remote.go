package panerr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// RemoteKind classifies a device-side API failure by its message, the way
// the XML API reports them. Classification never changes propagation: a
// RemoteError always surfaces verbatim to the caller.
type RemoteKind int

const (
	// RemoteUnclassified is any device-side rejection not matched below
	RemoteUnclassified RemoteKind = iota
	// RemoteInvalidCredentials indicates an authentication failure
	RemoteInvalidCredentials
	// RemoteTimeout indicates a connection or session timeout
	RemoteTimeout
	// RemoteNoSuchNode indicates the addressed XPath does not exist
	RemoteNoSuchNode
	// RemoteMalformed indicates the response document could not be parsed
	RemoteMalformed
)

func (k RemoteKind) String() string {
	switch k {
	case RemoteUnclassified:
		return "unclassified"
	case RemoteInvalidCredentials:
		return "invalid-credentials"
	case RemoteTimeout:
		return "timeout"
	case RemoteNoSuchNode:
		return "no-such-node"
	case RemoteMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("RemoteKind(%d)", int(k))
	}
}

// RemoteError is an opaque pass-through from the transport: an
// authentication failure, a malformed response, or a device-side rejection.
// The core never retries a RemoteError and never swallows one, including
// no-such-node on delete.
type RemoteError struct {
	Kind    RemoteKind
	Status  string
	Code    string
	Message string
}

func (e RemoteError) Error() string {
	s := "remote error"
	if e.Status != "" {
		s += " status:" + e.Status
	}
	if e.Code != "" {
		s += " code:" + e.Code
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// ClassifyRemote builds a RemoteError from a device response message,
// classifying it by the message prefixes the XML API uses.
func ClassifyRemote(status, code, message string) *RemoteError {
	e := &RemoteError{Kind: RemoteUnclassified, Status: status, Code: code, Message: message}
	switch {
	case message == "Invalid credentials." || strings.HasPrefix(message, "Invalid credentials"):
		e.Kind = RemoteInvalidCredentials
	case strings.HasPrefix(message, "No such node"):
		e.Kind = RemoteNoSuchNode
	case strings.HasPrefix(message, "Session timed out"),
		strings.HasSuffix(message, "timed out"):
		e.Kind = RemoteTimeout
	}
	return e
}

// AsRemote unwraps err to a RemoteError, if it is one.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	ok := errors.As(err, &re)
	return re, ok
}

// IsNoSuchNode reports whether err is a RemoteError for a missing node.
func IsNoSuchNode(err error) bool {
	re, ok := AsRemote(err)
	return ok && re.Kind == RemoteNoSuchNode
}
