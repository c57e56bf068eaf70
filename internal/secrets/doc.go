// Package secrets implements the secret-aware configuration store.
//
// Settings are persisted through the generic settings table; values whose
// keys are classified as sensitive are encrypted at rest with AES-256-GCM
// under a key derived once from the storage location. The store prefers
// partial availability over total failure: storage faults collapse to
// absent/false results, a single broken cipher token degrades to an empty
// value, and an unavailable cipher degrades the whole store to plaintext
// operation. Secret material is never logged.
package secrets
