package fabric

import (
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/imamik/fabkube/internal/descriptor"
	"github.com/imamik/fabkube/internal/util/labels"
	"github.com/imamik/fabkube/internal/util/naming"
)

// Synthesizer maps node types and identities to deployable descriptors.
// A Synthesizer is immutable after construction and safe for concurrent use.
type Synthesizer struct {
	images  Images
	layout  Layout
	stateDB StateDB
}

// NewSynthesizer creates a Synthesizer with the upstream images, the
// default layout and a LevelDB state database unless overridden.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		images:  DefaultImages,
		layout:  DefaultLayout,
		stateDB: DefaultStateDB,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns the deployment and service of a node. It never fails:
// an unknown node type yields a spec with an empty image, empty container
// name and no ports, which callers must treat as nothing to deploy.
func (s *Synthesizer) Synthesize(t NodeType, id NodeIdentity) NodeSpec {
	spec := NodeSpec{
		Type: t,
		Deployment: descriptor.Deployment{
			Name:   naming.Deployment(id.NodeName),
			Labels: labels.App(id.NodeID),
		},
		Service: descriptor.Service{
			Name:     naming.Service(id.NodeName),
			Selector: labels.App(id.NodeID),
			Type:     corev1.ServiceTypeNodePort,
		},
	}

	tbl, ok := tables[t]
	if !ok {
		spec.Deployment.Containers = []descriptor.Container{{}}
		return spec
	}

	r := s.replacer(id)
	container := descriptor.Container{
		Name:    tbl.container,
		Image:   tbl.image(s.images) + ":" + id.Version,
		Ports:   append([]int32(nil), tbl.ports...),
		Command: append([]string(nil), tbl.command...),
		Args:    renderAll(r, tbl.args),
	}
	for _, e := range tbl.env {
		container.Env = append(container.Env, descriptor.EnvVar{
			Name:  r.Replace(e.Name),
			Value: r.Replace(e.Value),
		})
	}
	for _, m := range tbl.mounts {
		container.VolumeMounts = append(container.VolumeMounts, descriptor.VolumeMount{
			MountPath: m.MountPath,
			Name:      naming.DataVolume,
			SubPath:   r.Replace(m.SubPath),
		})
	}

	spec.Deployment.Volumes = []descriptor.Volume{{Name: naming.DataVolume, ClaimName: naming.DataClaim}}
	spec.Deployment.Containers = []descriptor.Container{container}
	spec.Service.Ports = append([]descriptor.ServicePort(nil), tbl.servicePorts...)
	return spec
}

func (s *Synthesizer) replacer(id NodeIdentity) *strings.Replacer {
	return strings.NewReplacer(
		"{orgRoot}", s.layout.orgRoot(id.OrgName),
		"{netRoot}", s.layout.networkRoot(id.NetworkName),
		"{org}", id.OrgName,
		"{domain}", id.Domain(),
		"{node}", id.NodeName,
		"{network}", id.NetworkName,
		"{mspid}", id.MSPID(),
		"{bootstrap}", string(s.layout.Bootstrap),
		"{statedb}", s.stateDB.Backend,
		"{couchAddress}", s.stateDB.Address,
		"{couchUser}", s.stateDB.Username,
		"{couchPassword}", s.stateDB.Password,
	)
}

func renderAll(r *strings.Replacer, in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = r.Replace(s)
	}
	return out
}
