// Package tablestore provides storage abstraction for listing tables.
//
// ObjectStore is the interface for reading and writing whole objects.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic writes
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with parallel uploads
//   - minio.Store: MinIO and other S3-compatible storage
//
// Store composes an ObjectStore with a Format codec and a Compression
// codec so pipelines read and write typed tables instead of bytes:
//
//	store := tablestore.New(tablestore.NewLocalStore(dir))
//	tbl, err := store.ReadTable(ctx, "vehicles.csv.gz")
package tablestore
