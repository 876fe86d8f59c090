package handlers

import (
	"context"
	"fmt"
	"io"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/fabkube/internal/agent"
	"github.com/imamik/fabkube/internal/descriptor"
	"github.com/imamik/fabkube/internal/fabric"
	"github.com/imamik/fabkube/internal/k8s"
)

// NodeRequest carries the node flags.
type NodeRequest struct {
	Type      string
	ID        string
	Name      string
	Org       string
	Network   string
	Version   string
	AgentID   string
	Namespace string
}

func (r NodeRequest) nodeType() fabric.NodeType {
	return fabric.ParseNodeType(r.Type)
}

func (r NodeRequest) identity() fabric.NodeIdentity {
	return fabric.NodeIdentity{
		NodeID:      r.ID,
		NodeName:    r.Name,
		OrgName:     r.Org,
		NetworkName: r.Network,
		Version:     r.Version,
		AgentID:     r.AgentID,
	}
}

// NodeRender prints the manifests of a node without contacting a cluster.
func NodeRender(_ context.Context, g Globals, req NodeRequest, out io.Writer) error {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return err
	}
	namespace, err := resolveNamespace(cfg, req.Namespace)
	if err != nil {
		return err
	}

	synth, err := newSynthesizer(cfg)
	if err != nil {
		return err
	}

	objs, err := agent.New(synth, nil, namespace).Render(req.nodeType(), req.identity())
	if err != nil {
		return err
	}

	manifest, err := descriptor.Render(objs.List()...)
	if err != nil {
		return fmt.Errorf("failed to render manifest: %w", err)
	}

	_, err = out.Write(manifest)
	return err
}

// NodeCreate provisions a node and prints where it can be reached.
func NodeCreate(ctx context.Context, g Globals, req NodeRequest, wait bool, out io.Writer) error {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return err
	}
	namespace, err := resolveNamespace(cfg, req.Namespace)
	if err != nil {
		return err
	}
	defer flushMetrics(ctx, g)

	synth, err := newSynthesizer(cfg)
	if err != nil {
		return err
	}

	clientset, prov, err := connect(cfg, g)
	if err != nil {
		return err
	}
	a := agent.New(synth, prov, namespace)

	opCtx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
	defer cancel()

	result, err := a.CreateNode(opCtx, req.nodeType(), req.identity())
	if err != nil {
		return fmt.Errorf("failed to create node %s: %w", req.Name, err)
	}

	if wait {
		log.FromContext(ctx).Info("waiting for node to become ready", "node", result.Deployment.Name)
		if err := waitForDeployment(ctx, clientset, result.Namespace, result.Deployment.Name, k8s.DefaultPollInterval, cfg.OperationTimeout); err != nil {
			return err
		}
	}

	fmt.Fprint(out, renderNodeResult(result, wait))
	return nil
}

// NodeDelete removes a node's workloads. It only fails when the
// configuration or the cluster connection cannot be set up.
func NodeDelete(ctx context.Context, g Globals, nsOverride, name string) error {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return err
	}
	namespace, err := resolveNamespace(cfg, nsOverride)
	if err != nil {
		return err
	}
	defer flushMetrics(ctx, g)

	_, prov, err := connect(cfg, g)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
	defer cancel()

	agent.New(nil, prov, namespace).DeleteNode(ctx, name)
	return nil
}
