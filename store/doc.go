// Package store persists UserHomeConfig records keyed by user id.
//
// Three backends implement UserStore:
//   - MemoryStore: process-local map, for tests and the invoke command
//   - FileStore: a single JSON document on disk
//   - DynamoStore: a DynamoDB table with partial UpdateItem writes
//
// UpdateUser is a partial update: fields not named are untouched, an empty
// value removes the field, and a missing record is created.
package store
