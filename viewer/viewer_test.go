package viewer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirides/dxcaps/captree"
	"github.com/kirides/dxcaps/fields"
	"github.com/kirides/dxcaps/logger"
)

type fixture struct {
	resolved int
	root     *captree.Node
}

func newFixture() *fixture {
	f := &fixture{}
	table := func(fields.View) fields.Table {
		f.resolved++
		t := fields.NewTable()
		t.Required("Shader Model", "5.0")
		t.Queried("Driver Command Lists", false)
		return *t
	}
	f.root = captree.NewNode(captree.RootLabel, nil,
		captree.NewNode("Test GPU", nil,
			captree.NewNode("Direct3D 11", table),
		),
	)
	return f
}

func newServer(t *testing.T, f *fixture) http.Handler {
	t.Helper()
	w := NewWorker()
	t.Cleanup(w.Close)
	return New(f.root, w, WithLogger(logger.NewTestLogger())).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestWorkerSerializesJobs(t *testing.T) {
	w := NewWorker()
	defer w.Close()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Do(context.Background(), func() { counter++ }))
		}()
	}
	wg.Wait()

	var got int
	require.NoError(t, w.Do(context.Background(), func() { got = counter }))
	assert.Equal(t, 50, got)
}

func TestWorkerClosed(t *testing.T) {
	w := NewWorker()
	w.Close()
	w.Close()

	ran := false
	err := w.Do(context.Background(), func() { ran = true })
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, ran)
}

func TestWorkerCanceledContext(t *testing.T) {
	w := NewWorker()
	defer w.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = w.Do(context.Background(), func() {
			close(started)
			<-block
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Do(ctx, func() {}), context.Canceled)
	close(block)
}

func TestParsePath(t *testing.T) {
	got, err := parsePath("/0/2/1/")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, got)

	got, err = parsePath("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parsePath("0/x")
	assert.ErrorIs(t, err, errBadPath)
	_, err = parsePath("-1")
	assert.ErrorIs(t, err, errBadPath)
}

func TestHealthz(t *testing.T) {
	rr := get(t, newServer(t, newFixture()), "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestTreeDoesNotResolveTables(t *testing.T) {
	f := newFixture()
	rr := get(t, newServer(t, f), "/api/tree")
	require.Equal(t, http.StatusOK, rr.Code)

	var out outlineJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, captree.RootLabel, out.Label)
	require.Len(t, out.Children, 1)
	assert.Equal(t, "0", out.Children[0].Path)
	assert.Equal(t, "0/0", out.Children[0].Children[0].Path)
	assert.Equal(t, "Direct3D 11", out.Children[0].Children[0].Label)
	assert.Zero(t, f.resolved)
}

func TestNodeJSON(t *testing.T) {
	f := newFixture()
	h := newServer(t, f)

	rr := get(t, h, "/api/node/0/0")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var n nodeJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &n))
	assert.Equal(t, "Direct3D 11", n.Label)
	assert.Equal(t, "0/0", n.Path)
	require.NotNil(t, n.Table)
	assert.Len(t, n.Table.Rows, 1)
	require.Len(t, n.Trail, 3)
	assert.Equal(t, "Test GPU", n.Trail[1].Label)
	assert.Empty(t, n.Children)

	rr = get(t, h, "/api/node/0/0?view=all")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &n))
	assert.Len(t, n.Table.Rows, 2)

	// each view resolves once
	get(t, h, "/api/node/0/0?view=all")
	assert.Equal(t, 2, f.resolved)
}

func TestNodeRoot(t *testing.T) {
	rr := get(t, newServer(t, newFixture()), "/api/node")
	require.Equal(t, http.StatusOK, rr.Code)

	var n nodeJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &n))
	assert.Equal(t, captree.RootLabel, n.Label)
	assert.Nil(t, n.Table)
	require.Len(t, n.Children, 1)
	assert.Equal(t, childJSON{Path: "0", Label: "Test GPU"}, n.Children[0])
}

func TestNodeErrors(t *testing.T) {
	h := newServer(t, newFixture())

	rr := get(t, h, "/api/node/0/7")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "node not found")

	rr = get(t, h, "/api/node/zero")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPage(t *testing.T) {
	h := newServer(t, newFixture())

	rr := get(t, h, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rr.Body.String(), `href="/node/0?view=interesting"`)

	rr = get(t, h, "/node/0/0?view=all")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<td>Shader Model</td>")
	assert.Contains(t, body, `class="optional-absent"`)

	rr = get(t, h, "/node/3")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestClosedWorkerIsUnavailable(t *testing.T) {
	w := NewWorker()
	w.Close()
	h := New(newFixture().root, w).Handler()

	rr := get(t, h, "/api/tree")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
