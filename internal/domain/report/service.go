// Package report persists rendered daily reports as durable artifacts,
// one file per (tenant, date). Regenerating a report for the same date
// replaces the prior file.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// StoredReport describes a persisted artifact.
type StoredReport struct {
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	SizeBytes int    `json:"size_bytes"`
}

// Info describes one stored artifact in a listing.
type Info struct {
	Filename  string `json:"filename"`
	Date      string `json:"date"`
	SizeBytes int64  `json:"size_bytes"`
}

// Writer stores report artifacts under a root directory, partitioned by
// tenant. Only the writer touches that directory.
type Writer struct {
	root   string
	logger *slog.Logger
	now    func() time.Time
}

// NewWriter creates a report writer rooted at dir.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{root: dir, logger: logger, now: time.Now}
}

// Store writes (or overwrites) the artifact for (tenant, date). A generation
// timestamp trailer is appended to the stored text; the caller's content is
// not mutated. The write goes to a temporary file first and is renamed into
// place, so a partial write is never observable.
func (w *Writer) Store(ctx context.Context, tenantID, date, content string) (*StoredReport, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	dir := filepath.Join(w.root, tenantID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating reports dir: %w", err)
	}

	stamp := w.now().UTC().Format("2006-01-02 15:04:05 UTC")
	text := fmt.Sprintf("%s\n\n---\n*Report generated on %s*\n", strings.TrimSpace(content), stamp)

	filename := date + "_report.md"
	path := filepath.Join(dir, filename)

	tmp, err := os.CreateTemp(dir, filename+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp report: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("writing report: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("storing report: %w", err)
	}

	if w.logger != nil {
		w.logger.Info("stored daily report",
			"tenant_id", tenantID, "date", date, "path", path, "size_bytes", len(text))
	}
	return &StoredReport{Path: path, Filename: filename, SizeBytes: len(text)}, nil
}

// List returns the tenant's stored artifacts, newest date first.
func (w *Writer) List(ctx context.Context, tenantID string) ([]Info, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}

	entries, err := os.ReadDir(filepath.Join(w.root, tenantID))
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading reports dir: %w", err)
	}

	reports := make([]Info, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, "_report.md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		reports = append(reports, Info{
			Filename:  name,
			Date:      strings.TrimSuffix(name, "_report.md"),
			SizeBytes: info.Size(),
		})
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Date > reports[j].Date })
	return reports, nil
}
