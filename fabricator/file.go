package fabricator

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/antithesishq/fabrikate-go/random"
)

const defaultFilePrefix = "fabrikate-"

// File is the file-backed fallback fabricator. Each call writes a new object holding a
// random blob under a base URL and returns the object's URL. Unlike the other fabricators it
// performs blocking I/O and can fail; it is not safe for concurrent use.
type File struct {
	fs      afs.Service
	baseURL string
	prefix  string
	names   *UUID
	content Fabricator[[]byte]
	logger  *zap.Logger
	created []string
}

type FileOption func(*File)

// WithBaseURL sets the location new files are created under. It defaults to the OS
// temporary directory. Any URL supported by afs works, e.g. mem://localhost/fixtures.
func WithBaseURL(baseURL string) FileOption {
	return func(f *File) {
		f.baseURL = baseURL
	}
}

// WithStorage sets the storage service.
func WithStorage(fs afs.Service) FileOption {
	return func(f *File) {
		f.fs = fs
	}
}

// WithPrefix sets the name prefix of created files.
func WithPrefix(prefix string) FileOption {
	return func(f *File) {
		f.prefix = prefix
	}
}

// WithContent replaces the default 10 byte blob with another byte fabricator.
func WithContent(content Fabricator[[]byte]) FileOption {
	return func(f *File) {
		f.content = content
	}
}

func WithFileLogger(logger *zap.Logger) FileOption {
	return func(f *File) {
		f.logger = logger
	}
}

func NewFile(src random.Source, opts ...FileOption) (*File, error) {
	f := &File{
		baseURL: os.TempDir(),
		prefix:  defaultFilePrefix,
		names:   NewUUID(src, WithVersion4()),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.baseURL == "" {
		return nil, errors.Wrap(ErrInvalidConfiguration, "empty base URL")
	}
	if f.fs == nil {
		f.fs = afs.New()
	}
	if f.content == nil {
		f.content = NewDefaultBytes(src)
	}
	return f, nil
}

// Create writes a new file and returns its URL.
func (f *File) Create(ctx context.Context) (string, error) {
	URL := strings.TrimRight(f.baseURL, "/") + "/" + f.prefix + f.names.Fabricate().String()
	if err := f.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(f.content.Fabricate())); err != nil {
		return "", errors.Wrapf(err, "failed to create file fixture %v", URL)
	}
	f.created = append(f.created, URL)
	f.logger.Debug("created file fixture", zap.String("url", URL))
	return URL, nil
}

// Fabricate is Create with a background context. It panics if the file cannot be written.
func (f *File) Fabricate() string {
	URL, err := f.Create(context.Background())
	if err != nil {
		panic(err)
	}
	return URL
}

// Created returns the URLs of the files created so far that have not been cleaned up.
func (f *File) Created() []string {
	return append([]string(nil), f.created...)
}

// Cleanup deletes every file created by f. It attempts all deletions and reports every
// failure.
func (f *File) Cleanup(ctx context.Context) error {
	var err error
	var remaining []string
	for _, URL := range f.created {
		if e := f.fs.Delete(ctx, URL); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "failed to delete file fixture %v", URL))
			remaining = append(remaining, URL)
			continue
		}
		f.logger.Debug("deleted file fixture", zap.String("url", URL))
	}
	f.created = remaining
	return err
}
