// Package export writes the dashboard's charts as images, together with its
// catalog metadata record, into a per-name directory.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"toybox/internal/chart"
	"toybox/internal/dashboard"
	"toybox/internal/jsonutil"
	tblog "toybox/internal/log"
	"toybox/internal/progress"
)

const (
	// DefaultExportBase is the base directory relative to the user's home.
	DefaultExportBase = ".toybox/exports"
	// MetadataFile is the catalog record written next to the images.
	MetadataFile = "metadata.json"
	// DefaultName is the export directory used when none is given.
	DefaultName = "interactive-dashboard"
)

// Store writes exports under a base directory.
// Layout: <base>/<name>/{bar,line,pie}.<ext>, metadata.json
type Store struct {
	baseDir string
	logger  *slog.Logger
}

// Result lists what an export wrote.
type Result struct {
	Dir   string
	Files []string
}

// NewStore creates a store rooted at dir. An empty dir means ~/.toybox/exports.
// The environment is resolved by config.Load, not here.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	base := dir
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve export dir: %w", err)
		}
		base = filepath.Join(home, DefaultExportBase)
	}
	if logger == nil {
		logger = tblog.Discard()
	}
	return &Store{baseDir: base, logger: logger}, nil
}

// BaseDir returns the root directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Dir returns the directory for an export name.
func (s *Store) Dir(name string) string {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if normalized == "" {
		normalized = DefaultName
	}
	return filepath.Join(s.baseDir, normalized)
}

// Export renders every chart tab in format f, then writes the metadata record.
// A chart that fails to render is reported through emit and in the returned
// error; the remaining charts are still written.
func (s *Store) Export(ctx context.Context, name string, f chart.Format, emit progress.Emitter) (Result, error) {
	ctx, span := otel.Tracer("toybox/export").Start(ctx, "export.charts")
	defer span.End()
	span.SetAttributes(attribute.String("toybox.export.format", string(f)))

	if emit == nil {
		emit = progress.Discard
	}
	dir := s.Dir(name)
	res := Result{Dir: dir}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return res, fmt.Errorf("create export dir: %w", err)
	}
	emit.Emit(progress.Event{Message: "Exporting to " + dir, Status: progress.StatusRunning})

	var merr *multierror.Error
	for _, p := range dashboard.ChartPanels() {
		if err := ctx.Err(); err != nil {
			merr = multierror.Append(merr, err)
			break
		}
		path := filepath.Join(dir, p.Kind.String()+f.Ext())
		if err := writeChart(path, p.Kind, f); err != nil {
			s.logger.Warn("chart export failed", slog.String("chart", p.Kind.String()), slog.Any("error", err))
			emit.Emit(progress.Event{
				Message:  p.Title + ": " + err.Error(),
				Status:   progress.StatusError,
				Metadata: map[string]string{"chart": p.Kind.String()},
			})
			merr = multierror.Append(merr, fmt.Errorf("%s chart: %w", p.Kind, err))
			continue
		}
		res.Files = append(res.Files, path)
		s.logger.Debug("chart exported", slog.String("path", path))
		emit.Emit(progress.Event{
			Message:  p.Title,
			Status:   progress.StatusDone,
			Metadata: map[string]string{"path": path},
		})
	}

	metaPath := filepath.Join(dir, MetadataFile)
	if err := jsonutil.WriteFile(metaPath, dashboard.Info()); err != nil {
		merr = multierror.Append(merr, err)
		emit.Emit(progress.Event{Message: "Metadata: " + err.Error(), Status: progress.StatusError})
	} else {
		res.Files = append(res.Files, metaPath)
		emit.Emit(progress.Event{Message: "Metadata", Status: progress.StatusDone, Metadata: map[string]string{"path": metaPath}})
	}

	span.SetAttributes(attribute.Int("toybox.export.files", len(res.Files)))
	if err := merr.ErrorOrNil(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	return res, nil
}

// LoadMetadata reads back the catalog record of an export.
func (s *Store) LoadMetadata(name string) (dashboard.Metadata, error) {
	return jsonutil.ReadFile[dashboard.Metadata](filepath.Join(s.Dir(name), MetadataFile))
}

func writeChart(path string, kind dashboard.ChartKind, f chart.Format) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.Render(out, kind, f); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}
