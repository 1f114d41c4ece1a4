package report_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smallbizpal/smallbizpal/internal/domain/report"
	"github.com/stretchr/testify/require"
)

func TestWriter_StoreAppendsTrailer(t *testing.T) {
	ctx := context.Background()
	w := report.NewWriter(t.TempDir(), nil)

	stored, err := w.Store(ctx, "tenant1", "2025-06-01", "# Daily Report\n\nNothing happened.")
	require.NoError(t, err)
	require.Equal(t, "2025-06-01_report.md", stored.Filename)

	data, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, "# Daily Report")
	require.Contains(t, text, "\n\n---\n*Report generated on ")
	require.Regexp(t, `\*Report generated on \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} UTC\*\n$`, text)
	require.Equal(t, len(text), stored.SizeBytes)
}

func TestWriter_StoreOverwritesSameDate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	w := report.NewWriter(dir, nil)

	_, err := w.Store(ctx, "tenant1", "2025-06-01", "first version")
	require.NoError(t, err)
	stored, err := w.Store(ctx, "tenant1", "2025-06-01", "second version")
	require.NoError(t, err)

	data, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "second version")
	require.NotContains(t, string(data), "first version")

	// Only the one artifact remains, no temp files left behind.
	entries, err := os.ReadDir(filepath.Join(dir, "tenant1"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriter_StoreValidation(t *testing.T) {
	ctx := context.Background()
	w := report.NewWriter(t.TempDir(), nil)

	_, err := w.Store(ctx, "", "2025-06-01", "content")
	require.ErrorIs(t, err, report.ErrInvalidInput)

	_, err = w.Store(ctx, "tenant1", "2025-06-01", "   \n")
	require.ErrorIs(t, err, report.ErrEmptyContent)

	_, err = w.Store(ctx, "tenant1", "June 1st", "content")
	require.ErrorIs(t, err, report.ErrInvalidDate)
}

func TestWriter_StoreIsolatesTenants(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	w := report.NewWriter(dir, nil)

	_, err := w.Store(ctx, "tenant1", "2025-06-01", "for tenant1")
	require.NoError(t, err)
	_, err = w.Store(ctx, "tenant2", "2025-06-01", "for tenant2")
	require.NoError(t, err)

	reports, err := w.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	data, err := os.ReadFile(filepath.Join(dir, "tenant2", "2025-06-01_report.md"))
	require.NoError(t, err)
	require.Contains(t, string(data), "for tenant2")
}

func TestWriter_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	w := report.NewWriter(t.TempDir(), nil)

	for _, date := range []string{"2025-06-01", "2025-06-03", "2025-06-02"} {
		_, err := w.Store(ctx, "tenant1", date, "report for "+date)
		require.NoError(t, err)
	}

	reports, err := w.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, reports, 3)
	require.Equal(t, "2025-06-03", reports[0].Date)
	require.Equal(t, "2025-06-02", reports[1].Date)
	require.Equal(t, "2025-06-01", reports[2].Date)
	require.Greater(t, reports[0].SizeBytes, int64(0))
}

func TestWriter_ListMissingTenantIsEmpty(t *testing.T) {
	ctx := context.Background()
	w := report.NewWriter(t.TempDir(), nil)

	reports, err := w.List(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, reports)
}
