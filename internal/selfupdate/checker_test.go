package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewChecker("nkapoor", "emcmd",
		WithAPIBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
	)
}

func releaseHandler(t *testing.T, tag string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/nkapoor/emcmd/releases/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/nkapoor/emcmd/releases/tag/%s"}`, tag, tag)
	}
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, releaseHandler(t, "v1.2.0"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.1.3"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "v1.1.3", result.CurrentVersion)
	assert.Contains(t, result.ReleaseURL, "v1.2.0")
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, releaseHandler(t, "v1.1.3"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.3"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckNewerLocalBuild(t *testing.T) {
	c := newTestChecker(t, releaseHandler(t, "v1.1.0"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0-rc.1"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	c := newTestChecker(t, releaseHandler(t, "v9.9.9"))

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)

	_, err = c.Check(context.Background(), &CheckInput{Version: ""})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheckAPIError(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	})

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCheckBadTag(t *testing.T) {
	c := newTestChecker(t, releaseHandler(t, "nightly"))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid release tag")
}
