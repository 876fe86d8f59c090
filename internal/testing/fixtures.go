package testing

import "github.com/imamik/fabkube/internal/fabric"

// CAIdentity returns the identity of a CA node named ca0 in org1.
func CAIdentity() fabric.NodeIdentity {
	return fabric.NodeIdentity{
		NodeID:      "ca-id",
		NodeName:    "ca0",
		OrgName:     "org1.example.com",
		NetworkName: "net1",
		Version:     "1.4",
	}
}

// OrdererIdentity returns the identity of an orderer node named orderer0.
func OrdererIdentity() fabric.NodeIdentity {
	return fabric.NodeIdentity{
		NodeID:      "orderer-id",
		NodeName:    "orderer0",
		OrgName:     "orderer.example.com",
		NetworkName: "net1",
		Version:     "2.2",
	}
}

// PeerIdentity returns the identity of a peer node named peer0 in org1.
func PeerIdentity() fabric.NodeIdentity {
	return fabric.NodeIdentity{
		NodeID:      "peer-id",
		NodeName:    "peer0",
		OrgName:     "org1.example.com",
		NetworkName: "net1",
		Version:     "2.2",
	}
}
