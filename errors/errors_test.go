package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	require.Equal(t, "unknown token", New(UnknownToken).Error())
	require.Equal(t, "unknown token: Unknown Token: @@", New(UnknownToken, "Unknown Token", "@@").Error())
	require.Equal(t, "internal fault: length mismatch", New(Internal, "length mismatch").Error())
}

func TestErrorsCollection(t *testing.T) {
	var es Errors
	require.Equal(t, "", es.Error())

	es = append(es, New(UnknownToken, "Unknown Token", "`"))
	es = append(es, New(Internal, "unreachable"))

	// The collection reports its first entry.
	var err error = es
	require.Equal(t, "unknown token: Unknown Token: `", err.Error())
}
