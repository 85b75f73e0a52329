// Package service contains the cache-augmented task service, the layer
// between the HTTP handlers and the task store.
//
// Reads are read-through: the cache is consulted first and, on a miss, the
// store result is written back under the same key before it is returned.
// Every read reports its Provenance so the API can tell clients where the
// data came from.
//
// Writes are write-invalidate: after the store mutation commits, the
// collection entry is deleted and the item entry is refreshed or deleted.
// A cache that is unreachable on a read is treated as a miss. A cache that
// is unreachable after a write is retried with exponential backoff, then
// logged and ignored; the entry TTL bounds how long a stale value can live.
//
// Update and Delete load and mutate inside one transaction obtained through
// store.RunInTransaction so the connection is released on every exit path.
package service
