// Package object provides generic attributed objects and a manager with a time-bounded cache.
//
// Features:
//
//  - Attributed objects with ordered key-value storage, default valued reads and export with exclusions.
//  - Immutable objects that only implement the read capability.
//  - Builders that accumulate configuration with chained merges.
//  - Manager with a TTL-gated cache that is flushed on demand, either forcibly or when stale.
//  - Injected contextualized logging and stats collection.
//  - Race-free operation, flush check and reset are atomic.
package object
