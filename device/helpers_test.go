package device

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	n, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}
