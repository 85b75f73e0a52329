// Package domain contains the task entity and the validation rules that keep
// persisted task records well formed. It has no knowledge of storage, caching
// or HTTP.
package domain
