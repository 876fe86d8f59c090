package provision

// FailurePolicy decides what happens to a failed control plane call.
type FailurePolicy int

const (
	// MustSucceed failures are logged and returned to the caller.
	MustSucceed FailurePolicy = iota
	// BestEffort failures are logged and swallowed.
	BestEffort
)

func (p FailurePolicy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	default:
		return "must-succeed"
	}
}

// Operation names a single control plane step.
type Operation string

// Operations.
const (
	OpEnsureNamespace        Operation = "ensure_namespace"
	OpEnsurePersistentVolume Operation = "ensure_persistent_volume"
	OpEnsureStorageService   Operation = "ensure_storage_service"
	OpEnsureStorageEndpoints Operation = "ensure_storage_endpoints"
	OpEnsureClaim            Operation = "ensure_persistent_volume_claim"
	OpCreateDeployment       Operation = "create_deployment"
	OpCreateService          Operation = "create_service"
	OpCreateIngress          Operation = "create_ingress"
	OpDeleteDeployment       Operation = "delete_deployment"
	OpDeleteService          Operation = "delete_service"
	OpDeleteIngress          Operation = "delete_ingress"
)

type operationInfo struct {
	kind   string
	policy FailurePolicy
}

var operations = map[Operation]operationInfo{
	// A namespace that already exists, possibly created by a concurrent
	// caller, must not stop provisioning.
	OpEnsureNamespace: {kind: "Namespace", policy: BestEffort},

	// Every node deployment mounts the shared claim.
	OpEnsurePersistentVolume: {kind: "PersistentVolume", policy: MustSucceed},
	OpEnsureStorageService:   {kind: "Service", policy: MustSucceed},
	OpEnsureStorageEndpoints: {kind: "Endpoints", policy: MustSucceed},
	OpEnsureClaim:            {kind: "PersistentVolumeClaim", policy: MustSucceed},

	OpCreateDeployment: {kind: "Deployment", policy: MustSucceed},
	OpCreateService:    {kind: "Service", policy: MustSucceed},
	OpCreateIngress:    {kind: "Ingress", policy: MustSucceed},

	OpDeleteDeployment: {kind: "Deployment", policy: BestEffort},
	OpDeleteService:    {kind: "Service", policy: BestEffort},
	OpDeleteIngress:    {kind: "Ingress", policy: BestEffort},
}

// Operations returns every declared operation.
func Operations() []Operation {
	return []Operation{
		OpEnsureNamespace,
		OpEnsurePersistentVolume,
		OpEnsureStorageService,
		OpEnsureStorageEndpoints,
		OpEnsureClaim,
		OpCreateDeployment,
		OpCreateService,
		OpCreateIngress,
		OpDeleteDeployment,
		OpDeleteService,
		OpDeleteIngress,
	}
}

// PolicyFor returns the declared failure policy of op. Undeclared
// operations must succeed.
func PolicyFor(op Operation) FailurePolicy {
	info, ok := operations[op]
	if !ok {
		return MustSucceed
	}
	return info.policy
}

// Kind returns the Kubernetes kind op acts on.
func (op Operation) Kind() string {
	return operations[op].kind
}
