package applebooks

import "fmt"

// Store names used in error and warning context.
const (
	StoreBooks       = "books"
	StoreAnnotations = "annotations"
)

// StorageUnavailableError indicates that a store's root directory is missing
// or unreadable. It is fatal to that store's contribution for the current
// pass, never to the process.
type StorageUnavailableError struct {
	Store string
	Path  string
	Err   error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("%s store unavailable at %s: %v", e.Store, e.Path, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError indicates that a shard file does not contain the
// expected tables or columns. Only that shard's contribution is lost.
type SchemaMismatchError struct {
	Store string
	Shard string
	Err   error
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s shard %s has unexpected schema: %v", e.Store, e.Shard, e.Err)
}

func (e *SchemaMismatchError) Unwrap() error {
	return e.Err
}
