package fabric

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/imamik/fabkube/internal/descriptor"
)

// NodeType is the closed set of Fabric node variants.
type NodeType string

// Node types.
const (
	NodeTypeCA      NodeType = "ca"
	NodeTypeOrderer NodeType = "orderer"
	NodeTypePeer    NodeType = "peer"
)

// NodeTypes lists every supported node type.
var NodeTypes = []NodeType{NodeTypeCA, NodeTypeOrderer, NodeTypePeer}

// ParseNodeType parses a node type case-insensitively. Unknown values are
// returned as-is so they synthesize to an inert spec.
func ParseNodeType(s string) NodeType {
	return NodeType(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether t is one of the supported node types.
func (t NodeType) Known() bool {
	for _, known := range NodeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NodeIdentity is the abstract description of a node to deploy.
type NodeIdentity struct {
	// NodeID becomes the app label and the service selector.
	NodeID string
	// NodeName names the deployment and the service.
	NodeName string
	// OrgName is dot qualified, e.g. org1.example.com.
	OrgName     string
	NetworkName string
	// Version is the image tag.
	Version string
	// AgentID is carried through but does not influence the resources.
	AgentID string
}

// Domain returns everything after the first dot of OrgName, or "" when
// OrgName has no dot.
func (id NodeIdentity) Domain() string {
	_, domain, found := strings.Cut(id.OrgName, ".")
	if !found {
		return ""
	}
	return domain
}

// MSPID returns the local MSP id, Capitalize(NodeName) + "MSP".
func (id NodeIdentity) MSPID() string {
	return Capitalize(id.NodeName) + "MSP"
}

// Validate checks the identity fields a deployment of type t depends on.
// Synthesis never calls it; callers that submit to a cluster do.
func (id NodeIdentity) Validate(t NodeType) error {
	var errs []error
	if id.NodeID == "" {
		errs = append(errs, errors.New("node id is required"))
	}
	if id.NodeName == "" {
		errs = append(errs, errors.New("node name is required"))
	}
	if id.Version == "" {
		errs = append(errs, errors.New("version is required"))
	}
	if t == NodeTypeOrderer && id.Domain() == "" {
		errs = append(errs, fmt.Errorf("org name %q has no domain part", id.OrgName))
	}
	return errors.Join(errs...)
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// NodeSpec is the synthesized output for a single node.
type NodeSpec struct {
	Type       NodeType
	Deployment descriptor.Deployment
	Service    descriptor.Service
}

// Empty reports whether the spec describes nothing to deploy.
func (s NodeSpec) Empty() bool {
	return len(s.Deployment.Containers) == 0 || s.Deployment.Containers[0].Image == ""
}

// Container returns the node container.
func (s NodeSpec) Container() descriptor.Container {
	if len(s.Deployment.Containers) == 0 {
		return descriptor.Container{}
	}
	return s.Deployment.Containers[0]
}
