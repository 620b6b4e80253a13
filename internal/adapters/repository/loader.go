package repository

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/judgeboard/internal/domain/model"
	"github.com/okian/judgeboard/pkg/metrics"
)

// SamplePath names the embedded dataset used when no path is configured.
const SamplePath = "sample/evaluations.json"

//go:embed sample/evaluations.json
var sampleFS embed.FS

type loader struct {
	path   string
	reader io.Reader
}

// Source describes where a dataset was loaded from.
func (l *loader) source() string {
	switch {
	case l.reader != nil:
		return "reader"
	case l.path != "":
		return l.path
	default:
		return "embedded:" + SamplePath
	}
}

func (l *loader) open() (io.ReadCloser, error) {
	switch {
	case l.reader != nil:
		return io.NopCloser(l.reader), nil
	case l.path != "":
		return os.Open(l.path)
	default:
		b, err := sampleFS.ReadFile(SamplePath)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(b)), nil
	}
}

// Load reads, decodes and validates the dataset once. Decoding and
// invariant failures are returned wrapped in ErrLoadDataset together with
// the more specific kind (ErrInvalidDataset, ErrEmptyDataset).
func Load(ctx context.Context, opts ...Option) (*MemoryStore, string, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	src := l.source()

	start := time.Now()
	store, err := l.load(ctx)
	if err != nil {
		metrics.RecordDatasetLoadError()
		return nil, src, fmt.Errorf("%w from %s: %w", ErrLoadDataset, src, err)
	}
	metrics.RecordDatasetLoad(float64(time.Since(start).Milliseconds()))
	metrics.UpdateDatasetTeams(store.Count(ctx))
	return store, src, nil
}

func (l *loader) load(ctx context.Context) (*MemoryStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := l.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck // read-only

	var records []model.Record
	if err := json.NewDecoder(rc).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return NewMemoryStore(records)
}
