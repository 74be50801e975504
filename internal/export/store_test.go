package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toybox/internal/chart"
	"toybox/internal/dashboard"
	"toybox/internal/progress"
)

func TestNewStore_DefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TOYBOX_EXPORT_DIR", t.TempDir())

	store, err := NewStore("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultExportBase), store.BaseDir(), "only the configured dir overrides home")
}

func TestNewStore_ExplicitDir(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, store.BaseDir())
}

func TestStore_Dir_NormalizesName(t *testing.T) {
	store, err := NewStore("/base", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/base", "my-dashboard"), store.Dir(" My Dashboard "))
	assert.Equal(t, filepath.Join("/base", DefaultName), store.Dir(""))
}

func TestStore_Export_WritesChartsAndMetadata(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	var events []progress.Event
	res, err := store.Export(context.Background(), "demo", chart.FormatSVG,
		progress.EmitterFunc(func(ev progress.Event) { events = append(events, ev) }))
	require.NoError(t, err)

	dir := store.Dir("demo")
	assert.Equal(t, dir, res.Dir)
	assert.Equal(t, []string{
		filepath.Join(dir, "bar.svg"),
		filepath.Join(dir, "line.svg"),
		filepath.Join(dir, "pie.svg"),
		filepath.Join(dir, MetadataFile),
	}, res.Files)
	for _, f := range res.Files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), f)
	}

	require.Len(t, events, 5)
	assert.Equal(t, progress.StatusRunning, events[0].Status)
	for _, ev := range events[1:] {
		assert.Equal(t, progress.StatusDone, ev.Status, ev.Message)
	}

	meta, err := store.LoadMetadata("demo")
	require.NoError(t, err)
	assert.Equal(t, dashboard.Info().Title, meta.Title)
	assert.Equal(t, dashboard.CategoryInteractiveUI, meta.Category)
	assert.True(t, dashboard.Info().CreatedAt.Equal(meta.CreatedAt))
}

func TestStore_Export_UnknownFormatReportsEveryChart(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	var failed int
	res, err := store.Export(context.Background(), "bad", chart.Format("bmp"),
		progress.EmitterFunc(func(ev progress.Event) {
			if ev.Status == progress.StatusError {
				failed++
			}
		}))
	require.Error(t, err)
	assert.ErrorIs(t, err, chart.ErrUnknownFormat)
	assert.Equal(t, 3, failed)
	assert.Equal(t, []string{filepath.Join(store.Dir("bad"), MetadataFile)}, res.Files)

	_, statErr := os.Stat(filepath.Join(store.Dir("bad"), "bar.bmp"))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "partial files are removed")
}

func TestStore_Export_CancelledContext(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Export(ctx, "cancelled", chart.FormatPNG, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_LoadMetadata_Missing(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.LoadMetadata("nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
