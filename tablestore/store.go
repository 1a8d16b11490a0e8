package tablestore

import (
	"context"
	"fmt"
	"os"

	"github.com/dealpredict/carwash/listing"
)

// ErrNotFound is returned when an object does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ObjectStore is an abstraction for whole-object storage.
type ObjectStore interface {
	// Get reads the named object.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put writes the named object atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes the named object. Deleting a missing object is
	// not an error.
	Delete(ctx context.Context, name string) error
	// List returns the object names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Store reads and writes listing tables through an ObjectStore.
// Format and compression are selected per object name: the outermost
// suffix picks the compression, the one before it the format, so
// "vehicles.csv.gz" is gzip-compressed CSV.
type Store struct {
	objects ObjectStore
	format  Format
	comp    Compression
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithFormat fixes the format instead of deriving it from the name.
func WithFormat(f Format) StoreOption {
	return func(s *Store) { s.format = f }
}

// WithCompression fixes the compression instead of deriving it from
// the name.
func WithCompression(c Compression) StoreOption {
	return func(s *Store) { s.comp = c }
}

// New creates a table store on top of an object store.
func New(objects ObjectStore, opts ...StoreOption) *Store {
	s := &Store{objects: objects}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Objects returns the underlying object store.
func (s *Store) Objects() ObjectStore { return s.objects }

func (s *Store) codecs(name string) (Format, Compression, error) {
	comp := s.comp
	rest := name
	if comp == nil {
		comp, rest = CompressionFor(name)
	}
	format := s.format
	if format == nil {
		var ok bool
		format, ok = FormatFor(rest)
		if !ok {
			return nil, nil, fmt.Errorf("tablestore: no format for object %q", name)
		}
	}
	return format, comp, nil
}

// ReadTable reads, decompresses and decodes the named object.
func (s *Store) ReadTable(ctx context.Context, name string) (*listing.Table, error) {
	format, comp, err := s.codecs(name)
	if err != nil {
		return nil, err
	}

	data, err := s.objects.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("tablestore: get %q: %w", name, err)
	}

	raw, err := comp.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("tablestore: decompress %q with %s: %w", name, comp.Name(), err)
	}

	t, err := format.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("tablestore: decode %q as %s: %w", name, format.Name(), err)
	}
	return t, nil
}

// WriteTable encodes, compresses and writes the table to the named
// object.
func (s *Store) WriteTable(ctx context.Context, name string, t *listing.Table) error {
	format, comp, err := s.codecs(name)
	if err != nil {
		return err
	}

	raw, err := format.Encode(t)
	if err != nil {
		return fmt.Errorf("tablestore: encode %q as %s: %w", name, format.Name(), err)
	}

	data, err := comp.Compress(raw)
	if err != nil {
		return fmt.Errorf("tablestore: compress %q with %s: %w", name, comp.Name(), err)
	}

	if err := s.objects.Put(ctx, name, data); err != nil {
		return fmt.Errorf("tablestore: put %q: %w", name, err)
	}
	return nil
}
