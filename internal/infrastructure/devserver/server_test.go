package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port/mocks"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/schema"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rec
}

func TestRouter_ServesDocumentFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tabs:\n  - name: Home\n"), 0o600))

	srv := New(schema.NewFileSource(path), "", zerolog.Nop())
	router := srv.Router()

	rec := get(t, router, DocumentPath)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var raw any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	doc := entity.DecodeSchema(raw)
	require.Len(t, doc.Tabs, 1)
	assert.Equal(t, "Home", doc.Tabs[0].Name)

	// Edits are picked up without a restart.
	require.NoError(t, os.WriteFile(path, []byte("tabs:\n  - name: Home\n  - name: News\n"), 0o600))
	require.NoError(t, json.Unmarshal(get(t, router, "/").Body.Bytes(), &raw))
	assert.Len(t, entity.DecodeSchema(raw).Tabs, 2)
}

func TestRouter_SourceError(t *testing.T) {
	src := mocks.NewMockSchemaSource(t)
	src.EXPECT().Fetch(mock.Anything).Return(nil, errors.New("broken yaml")).Once()

	rec := get(t, New(src, "", zerolog.Nop()).Router(), DocumentPath)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "broken yaml")
}

func TestRouter_HealthSchemaAndPages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.html"), []byte("<p>about</p>"), 0o600))

	router := New(mocks.NewMockSchemaSource(t), dir, zerolog.Nop()).Router()

	assert.Equal(t, "OK\n", get(t, router, "/health").Body.String())

	rec := get(t, router, "/schema.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tabs"`)

	rec = get(t, router, "/pages/about.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "about")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, DocumentPath, http.NoBody))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServe_StopsWithContext(t *testing.T) {
	src := mocks.NewMockSchemaSource(t)
	src.EXPECT().Fetch(mock.Anything).Return(map[string]any{"tabs": []any{}}, nil).Once()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(src, "", zerolog.Nop()).Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + DocumentPath)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.JSONEq(t, `{"tabs": []}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
