package repository

import (
	"io"
	"strings"
)

// Option applies a configuration option to the loader.
type Option func(*loader)

// WithPath reads the dataset from a file. An empty path keeps the embedded sample.
func WithPath(path string) Option {
	return func(l *loader) {
		if p := strings.TrimSpace(path); p != "" {
			l.path = p
		}
	}
}

// WithReader reads the dataset from r. It takes precedence over WithPath.
func WithReader(r io.Reader) Option {
	return func(l *loader) {
		if r != nil {
			l.reader = r
		}
	}
}
