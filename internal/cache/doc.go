// Package cache provides the key/value cache that sits in front of the task
// store.
//
// Values are JSON documents stored under two key families: a single
// collection key holding the full task list and one item key per task id.
// Every entry expires after a TTL, five minutes unless the caller overrides
// it. The Redis backend is built on go-redis; NopCache is used when caching
// is disabled and behaves like a cache that never holds anything.
package cache
