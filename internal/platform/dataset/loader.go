package dataset

import (
	"log/slog"
	"sync"
)

// Loader loads a dataset once per process and hands out the same
// read-only instance afterwards. An empty path selects the embedded data.
type Loader struct {
	path   string
	logger *slog.Logger

	once sync.Once
	ds   *Dataset
	err  error
}

// NewLoader creates a Loader for the dataset at path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		path:   path,
		logger: logger.With("component", "dataset_loader"),
	}
}

// Load returns the dataset, reading it on first use. The result, including
// a failure, is never invalidated.
func (l *Loader) Load() (*Dataset, error) {
	l.once.Do(func() {
		if l.path == "" {
			l.ds, l.err = LoadEmbedded()
		} else {
			l.ds, l.err = LoadFile(l.path)
		}

		if l.err != nil {
			l.logger.Error("failed to load hexagram dataset", "error", l.err, "embedded", l.path == "")
			return
		}
		l.logger.Info("hexagram dataset loaded", "records", l.ds.Len(), "embedded", l.path == "")
	})
	return l.ds, l.err
}
