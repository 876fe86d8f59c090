package fabric

import "github.com/imamik/fabkube/internal/descriptor"

// table is the static description of one node type. String fields may hold
// placeholders that are resolved against the identity:
//
//	{org}        organization name            org1.example.com
//	{domain}     organization domain          example.com
//	{node}       node name                    peer0
//	{network}    network name                 net1
//	{orgRoot}    layout crypto root for {org} ./org1.example.com/
//	{netRoot}    layout network root          ./net1/
//	{mspid}      local MSP id                 Peer0MSP
//	{bootstrap}  orderer bootstrap naming     BOOTSTRAP
//	{statedb} {couchAddress} {couchUser} {couchPassword}
type table struct {
	container    string
	image        func(Images) string
	ports        []int32
	servicePorts []descriptor.ServicePort
	env          []descriptor.EnvVar
	mounts       []descriptor.VolumeMount
	command      []string
	args         []string
}

var tables = map[NodeType]table{
	NodeTypeCA:      caTable,
	NodeTypeOrderer: ordererTable,
	NodeTypePeer:    peerTable,
}
