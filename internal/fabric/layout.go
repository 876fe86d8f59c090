package fabric

import (
	"fmt"
	"strings"
)

// BootstrapNaming selects the environment variable names the orderer reads
// its bootstrap block from.
type BootstrapNaming string

const (
	// BootstrapNamingBootstrap uses ORDERER_GENERAL_BOOTSTRAPMETHOD/BOOTSTRAPFILE (Fabric 2.x).
	BootstrapNamingBootstrap BootstrapNaming = "BOOTSTRAP"
	// BootstrapNamingGenesis uses ORDERER_GENERAL_GENESISMETHOD/GENESISFILE (Fabric 1.4).
	BootstrapNamingGenesis BootstrapNaming = "GENESIS"
)

// Layout describes where crypto material and channel artifacts live on the
// shared data volume, and which orderer bootstrap naming is in use.
type Layout struct {
	Revision string
	// OrgRoot prefixes every crypto-config sub path. {org} is replaced by
	// the organization name.
	OrgRoot string
	// NetworkRoot holds the genesis block. {network} is replaced by the
	// network name.
	NetworkRoot string
	Bootstrap   BootstrapNaming
}

// Known layout revisions.
var (
	LayoutV1 = Layout{
		Revision:    "v1",
		OrgRoot:     "./",
		NetworkRoot: "./{network}/",
		Bootstrap:   BootstrapNamingGenesis,
	}
	LayoutV2 = Layout{
		Revision:    "v2",
		OrgRoot:     "./{org}/",
		NetworkRoot: "./{network}/",
		Bootstrap:   BootstrapNamingBootstrap,
	}

	// DefaultLayout is used when no layout option is given.
	DefaultLayout = LayoutV2
)

// LayoutFor returns the layout of a named revision.
func LayoutFor(revision string) (Layout, error) {
	switch strings.ToLower(revision) {
	case LayoutV1.Revision:
		return LayoutV1, nil
	case LayoutV2.Revision, "":
		return LayoutV2, nil
	default:
		return Layout{}, fmt.Errorf("unknown layout revision %q (want v1 or v2)", revision)
	}
}

func (l Layout) orgRoot(org string) string {
	return strings.ReplaceAll(l.OrgRoot, "{org}", org)
}

func (l Layout) networkRoot(network string) string {
	return strings.ReplaceAll(l.NetworkRoot, "{network}", network)
}
