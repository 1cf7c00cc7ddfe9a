package page

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"mpd2html/internal/catalog"
	"mpd2html/internal/fileutil"
	"mpd2html/internal/logging"
	"mpd2html/internal/preflight"
)

//go:embed assets/style.css
var assets embed.FS

// LockName is the lock file held in the output directory while writing.
const LockName = ".mpd2html.lock"

// ErrLocked reports that another run holds the output directory lock.
var ErrLocked = errors.New("output directory is locked by another run")

// Options configures a Writer.
type Options struct {
	Title      string
	Pages      []Page
	WriteIndex bool
	AssetsDir  string
	Workers    int
	Logger     *slog.Logger
}

// Writer lays listing pages and assets into an output directory.
type Writer struct {
	dir      string
	opts     Options
	renderer *Renderer
	logger   *slog.Logger
}

// Summary lists what WriteAll produced.
type Summary struct {
	Files []string
	Bytes int64
}

// NewWriter validates opts and prepares the renderer. An empty page list
// selects every page.
func NewWriter(dir string, opts Options) (*Writer, error) {
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	if len(opts.Pages) == 0 {
		opts.Pages = Pages()
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	renderer, err := NewRenderer(opts.Title, opts.Pages)
	if err != nil {
		return nil, err
	}
	return &Writer{
		dir:      dir,
		opts:     opts,
		renderer: renderer,
		logger:   logging.NewComponentLogger(opts.Logger, "render"),
	}, nil
}

// WriteAll renders every configured page for records. Pages render in
// parallel, bounded by Options.Workers; the first failure cancels the rest.
func (w *Writer) WriteAll(ctx context.Context, records []catalog.Record) (Summary, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output directory: %w", err)
	}
	if check := preflight.CheckDirectoryAccess("Output directory", w.dir); !check.Passed {
		return Summary{}, fmt.Errorf("output directory: %s", check.Detail)
	}

	lock := flock.New(filepath.Join(w.dir, LockName))
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return Summary{}, ErrLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			w.logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	var (
		mu      sync.Mutex
		summary Summary
	)
	record := func(name string, size int64) {
		mu.Lock()
		defer mu.Unlock()
		summary.Files = append(summary.Files, name)
		summary.Bytes += size
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.opts.Workers)
	for _, p := range w.opts.Pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := w.renderer.RenderBytes(p, records)
			if err != nil {
				return err
			}
			names := []string{p.FileName()}
			if p.Canonical && w.opts.WriteIndex {
				names = append(names, IndexName)
			}
			for _, name := range names {
				if err := fileutil.WriteFileAtomic(filepath.Join(w.dir, name), data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
				record(name, int64(len(data)))
				w.logger.Debug("page written",
					slog.String(logging.FieldPage, name),
					slog.Int("records", len(records)),
					slog.String("size", humanize.Bytes(uint64(len(data)))),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	if err := w.writeAssets(&summary); err != nil {
		return summary, err
	}
	sort.Strings(summary.Files)

	w.logger.Info("pages written",
		slog.String("dir", w.dir),
		slog.Int("files", len(summary.Files)),
		slog.String("size", humanize.Bytes(uint64(summary.Bytes))),
	)
	return summary, nil
}

func (w *Writer) writeAssets(summary *Summary) error {
	css, err := assets.ReadFile("assets/style.css")
	if err != nil {
		return fmt.Errorf("read embedded stylesheet: %w", err)
	}
	if err := fileutil.WriteFileAtomic(filepath.Join(w.dir, "style.css"), css, 0o644); err != nil {
		return fmt.Errorf("write style.css: %w", err)
	}
	summary.Files = append(summary.Files, "style.css")
	summary.Bytes += int64(len(css))

	if w.opts.AssetsDir == "" {
		return nil
	}
	files, size, err := fileutil.CopyTree(w.opts.AssetsDir, w.dir)
	if err != nil {
		return fmt.Errorf("copy assets: %w", err)
	}
	summary.Bytes += size
	w.logger.Info("assets copied",
		slog.String("from", w.opts.AssetsDir),
		slog.Int("files", files),
		slog.String("size", humanize.Bytes(uint64(size))),
	)
	return nil
}
