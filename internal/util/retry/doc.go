// Package retry provides exponential backoff retry logic for transient failures.
//
// The provisioner itself never retries. Callers wrap idempotent sequences
// (namespace and shared storage ensure) in [WithExponentialBackoff]; the
// unconditional create operations must not be retried this way since a
// second attempt turns a transient failure into an AlreadyExists conflict.
package retry
