package syncer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agency_admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			BaseModel:     models.BaseModel{ID: 1, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
			Title:         "SEO Campaign",
			Description:   "Organic growth",
			Category:      "SEO",
			ImageFilename: "abc_photo.png",
		},
		{
			BaseModel:     models.BaseModel{ID: 2, CreatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)},
			Title:         "Flyer Run",
			Description:   "Offset print",
			Category:      "Printing Press",
			ImageFilename: "def_flyer.jpg",
		},
	}
}

func TestSnapshotConversion(t *testing.T) {
	snapshot := Snapshot(sampleItems())

	require.Len(t, snapshot, 2)
	assert.Equal(t, uint(1), snapshot[0].ID)
	assert.Equal(t, "SEO Campaign", snapshot[0].Title)
	assert.Equal(t, "abc_photo.png", snapshot[0].ImageFilename)
	assert.Equal(t, "Printing Press", snapshot[1].Category)
}

func TestFileNotifierWritesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.json")
	n, err := NewFileNotifier(path)
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), Snapshot(sampleItems())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	for _, key := range []string{"id", "title", "description", "category", "image_filename", "created_at"} {
		assert.Contains(t, decoded[0], key)
	}
	assert.Equal(t, "SEO Campaign", decoded[0]["title"])
}

func TestFileNotifierOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	n, err := NewFileNotifier(path)
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), Snapshot(sampleItems())))
	require.NoError(t, n.Notify(context.Background(), []ItemSnapshot{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []ItemSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Empty(t, decoded)

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snapshot.json", entries[0].Name())
}

func TestFileNotifierRejectsEmptyPath(t *testing.T) {
	_, err := NewFileNotifier("")
	assert.Error(t, err)
}

func TestWebhookNotifier(t *testing.T) {
	var received []ItemSnapshot
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n, err := NewWebhookNotifier(server.URL, 2*time.Second)
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), Snapshot(sampleItems())))
	require.Len(t, received, 2)
	assert.Equal(t, "Flyer Run", received[1].Title)
}

func TestWebhookNotifierErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n, err := NewWebhookNotifier(server.URL, 2*time.Second)
	require.NoError(t, err)

	assert.Error(t, n.Notify(context.Background(), nil))
}

// recordingNotifier counts deliveries for Dispatch tests.
type recordingNotifier struct {
	calls chan []ItemSnapshot
}

func (r *recordingNotifier) Notify(ctx context.Context, snapshot []ItemSnapshot) error {
	r.calls <- snapshot
	return nil
}

func TestDispatchRunsInBackground(t *testing.T) {
	rec := &recordingNotifier{calls: make(chan []ItemSnapshot, 1)}

	Dispatch(rec, Snapshot(sampleItems()), time.Second)

	select {
	case got := <-rec.calls:
		assert.Len(t, got, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}

type failingNotifier struct {
	called chan struct{}
}

func (f *failingNotifier) Notify(ctx context.Context, snapshot []ItemSnapshot) error {
	close(f.called)
	return context.DeadlineExceeded
}

func TestDispatchAbsorbsNotifierFailure(t *testing.T) {
	fn := &failingNotifier{called: make(chan struct{})}

	assert.NotPanics(t, func() {
		Dispatch(fn, nil, time.Second)
	})

	select {
	case <-fn.called:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}

func TestDispatchNilNotifier(t *testing.T) {
	assert.NotPanics(t, func() {
		Dispatch(nil, nil, time.Second)
	})
}
