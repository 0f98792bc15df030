// Package tempfile owns the process-wide temp directory and the scoped
// files created inside it.
package tempfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// Root is the shared temp directory. It is created lazily on first Acquire,
// exactly once, and is read-only afterwards.
type Root struct {
	path      string
	once      sync.Once
	mkdir     func(path string, perm fs.FileMode) error
	remove    func(path string) error
	onCleanup func(err error)
	logger    zerolog.Logger
}

// Option configures a Root
type Option func(*Root)

// WithRemoveFunc replaces the function used to delete released files
func WithRemoveFunc(remove func(path string) error) Option {
	return func(r *Root) {
		r.remove = remove
	}
}

// WithMkdirFunc replaces the function used to create the root directory
func WithMkdirFunc(mkdir func(path string, perm fs.FileMode) error) Option {
	return func(r *Root) {
		r.mkdir = mkdir
	}
}

// WithCleanupHook registers fn to be called for every failed removal
func WithCleanupHook(fn func(err error)) Option {
	return func(r *Root) {
		r.onCleanup = fn
	}
}

// NewRoot creates a Root at baseDir/name without touching the filesystem
func NewRoot(baseDir, name string, logger zerolog.Logger, opts ...Option) *Root {
	r := &Root{
		path:   filepath.Join(baseDir, name),
		mkdir:  os.MkdirAll,
		remove: os.Remove,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the root directory path
func (r *Root) Path() string {
	return r.path
}

// ensure creates the root directory once. A failure is logged and the path
// is used regardless; the fetcher will surface the real error.
func (r *Root) ensure() {
	r.once.Do(func() {
		if err := r.mkdir(r.path, 0o755); err != nil {
			r.logger.Error().Err(err).Str("path", r.path).Msg("Failed to create temporary directory")
			return
		}
		r.logger.Debug().Str("path", r.path).Msg("Temporary directory ready")
	})
}

// Acquire reserves filename inside the root. The file itself is not created.
func (r *Root) Acquire(filename string) *File {
	r.ensure()

	f := &File{
		path: filepath.Join(r.path, filepath.Base(filename)),
		root: r,
	}
	r.logger.Debug().Str("path", f.path).Msg("New tempfile")
	return f
}

// File is a scoped handle on one path under the root
type File struct {
	path     string
	root     *Root
	released sync.Once
}

// Path returns the backing file path
func (f *File) Path() string {
	return f.path
}

// Release deletes the backing file if present. It is safe to call more than
// once; only the first call has an effect. Failures are logged as warnings
// and never returned.
func (f *File) Release() {
	f.released.Do(func() {
		f.root.logger.Debug().Str("path", f.path).Msg("Drop tempfile")

		err := f.root.remove(f.path)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			return
		}

		cleanupErr := pkgerrors.NewCleanupError("removing tempfile failed", err)
		f.root.logger.Warn().Err(cleanupErr).Str("path", f.path).Msg("Removing tempfile failed")
		if f.root.onCleanup != nil {
			f.root.onCleanup(cleanupErr)
		}
	})
}
