package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
)

const gcsScheme = "gs://"

var (
	ErrSourceNotFound = errors.New("source file not found")
	ErrInvalidGCSURI  = errors.New("invalid gs:// URI")
)

// objectStore dispatches local paths to the filesystem and gs:// URLs to
// Google Cloud Storage. A storage client is created per object and closed
// together with it.
type objectStore struct {
	newClient func(ctx context.Context) (*storage.Client, error)
}

// NewObjectStore creates an object store using Application Default Credentials for gs:// paths
func NewObjectStore() ObjectStoreInterface {
	return &objectStore{
		newClient: func(ctx context.Context) (*storage.Client, error) {
			return storage.NewClient(ctx)
		},
	}
}

func (s *objectStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if !IsGCSPath(path) {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
			}
			return nil, fmt.Errorf("open file %q: %w", path, err)
		}
		return f, nil
	}

	bucket, object, err := ParseGCSURI(path)
	if err != nil {
		return nil, err
	}

	client, err := s.newClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open GCS object reader: %w", err)
	}

	return &gcsReader{Reader: r, client: client}, nil
}

func (s *objectStore) Create(ctx context.Context, path string) (io.WriteCloser, error) {
	if !IsGCSPath(path) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create directory %q: %w", dir, err)
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create file %q: %w", path, err)
		}
		return f, nil
	}

	bucket, object, err := ParseGCSURI(path)
	if err != nil {
		return nil, err
	}

	client, err := s.newClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = "text/csv"

	return &gcsWriter{Writer: w, client: client}, nil
}

type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

type gcsWriter struct {
	*storage.Writer
	client *storage.Client
}

// Close finalizes the upload
func (w *gcsWriter) Close() error {
	err := w.Writer.Close()
	if err != nil {
		err = fmt.Errorf("finalize upload: %w", err)
	}
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func IsGCSPath(path string) bool {
	return strings.HasPrefix(path, gcsScheme)
}

// ParseGCSURI splits gs://bucket/path/to/object into bucket and object name
func ParseGCSURI(uri string) (bucket, object string, err error) {
	if !IsGCSPath(uri) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidGCSURI, uri)
	}

	bucket, object, found := strings.Cut(strings.TrimPrefix(uri, gcsScheme), "/")
	if !found || bucket == "" || object == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidGCSURI, uri)
	}

	return bucket, object, nil
}
