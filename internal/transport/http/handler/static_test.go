package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>entry</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('app')"), 0644))
	return dir
}

func TestSPA_ServesExistingAsset(t *testing.T) {
	h := NewSPAHandler(newStaticDir(t))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "console.log('app')", rr.Body.String())
}

func TestSPA_UnknownPathFallsBackToIndex(t *testing.T) {
	h := NewSPAHandler(newStaticDir(t))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/checkout/step-2", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<html>entry</html>", rr.Body.String())
}

func TestSPA_RootServesIndex(t *testing.T) {
	h := NewSPAHandler(newStaticDir(t))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<html>entry</html>", rr.Body.String())
}

func TestSPA_TraversalCannotEscapeAssetDir(t *testing.T) {
	dir := newStaticDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.txt"), []byte("secret"), 0644))
	h := NewSPAHandler(dir)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/../secret.txt", nil))

	assert.NotEqual(t, "secret", rr.Body.String())
}

func TestSPA_NonGetIsNotFound(t *testing.T) {
	h := NewSPAHandler(newStaticDir(t))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/anything", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
