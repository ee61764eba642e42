package sources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var (
	ErrInvalidPath     = errors.New("invalid path")
	ErrFileNotFound    = errors.New("file not found")
	ErrNotRegularFile  = errors.New("not a regular file")
	ErrFileNotReadable = errors.New("file not readable")
)

var gzipMagic = []byte{0x1f, 0x8b}

//go:generate mockgen -source=log_source.go -destination=./mocks/log_source_mock.go -package=mocks
type LogSource interface {
	// Open returns the content of the log file at path. Gzip-compressed files
	// are decompressed transparently. The caller must close the reader.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type fileSource struct{}

func NewFileSource() LogSource {
	return &fileSource{}
}

func (s *fileSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrInvalidPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}

	br := bufio.NewReader(file)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil || !isGzip(magic) {
		return &multiCloser{Reader: br, closers: []io.Closer{file}}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}

	return &multiCloser{Reader: zr, closers: []io.Closer{zr, file}}, nil
}

func isGzip(magic []byte) bool {
	return len(magic) == len(gzipMagic) && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1]
}

// multiCloser closes every closer in order, reporting all failures.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
