// Package provision applies node descriptors and the shared storage chain to
// a Kubernetes cluster through client-go.
//
// Operations come in three families with different contracts:
//
//   - Ensure (EnsureNamespace, EnsureSharedStorage) reads first and creates
//     only on NotFound, so it is safe to repeat. A failed storage chain
//     resumes at the first missing object on the next call.
//   - Create (CreateDeployment, CreateService, CreateIngress) creates
//     unconditionally. A second call for the same name fails with the API
//     server's AlreadyExists error; callers own at-most-once invocation.
//   - Delete (DeleteDeployment, DeleteService, DeleteIngress) is cleanup
//     and never reports failure.
//
// Whether a failure is swallowed after logging or returned is declared per
// [Operation] in a single table, see [PolicyFor]. Nothing here retries.
package provision
