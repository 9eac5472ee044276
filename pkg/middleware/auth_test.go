package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doAuthRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var (
		gotUserID int64
		gotOK     bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	RequireUser(next).ServeHTTP(rec, req)

	return rec, gotUserID, gotOK
}

func TestRequireUser_ValidToken(t *testing.T) {
	rec, userID, ok := doAuthRequest(t, "Bearer user-42")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestRequireUser_MissingHeader(t *testing.T) {
	rec, _, ok := doAuthRequest(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestRequireUser_MalformedTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no bearer prefix", "user-42"},
		{"wrong scheme", "Basic user-42"},
		{"missing user prefix", "Bearer 42"},
		{"non-numeric id", "Bearer user-abc"},
		{"zero id", "Bearer user-0"},
		{"negative id", "Bearer user--7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, ok := doAuthRequest(t, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, ok)
		})
	}
}
