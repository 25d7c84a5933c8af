package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusBadRequest, Status(Validation("username", "taken")))
	require.Equal(t, http.StatusBadRequest, Status(Precondition("seed categories first")))
	require.Equal(t, http.StatusUnauthorized, Status(Auth("invalid credentials")))
	require.Equal(t, http.StatusInternalServerError, Status(Storage("server error", errors.New("boom"))))
	require.Equal(t, http.StatusInternalServerError, Status(errors.New("plain error")))
}

func TestWrappedErrorsStillMap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("handler: %w", Auth("nope"))
	require.Equal(t, http.StatusUnauthorized, Status(err))
	require.Equal(t, "nope", MessageOf(err))
}

func TestFieldAndMessage(t *testing.T) {
	t.Parallel()

	err := Validation("password", "too short")
	require.Equal(t, "password", FieldOf(err))
	require.Equal(t, "too short", MessageOf(err))

	require.Empty(t, FieldOf(Auth("denied")))
	require.Equal(t, "Server error", MessageOf(errors.New("pg: connection refused")))
}

func TestStorageKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("write conflict")
	err := Storage("Server error", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "write conflict")
	require.Equal(t, "Server error", MessageOf(err))
}
