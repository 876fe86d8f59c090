package fabric

import "github.com/imamik/fabkube/internal/descriptor"

const (
	peerPort      = 7051
	peerChaincode = 7052
	peerMSPDir    = "/etc/hyperledger/peer/msp"
	peerOrgDir    = "{orgRoot}crypto-config/peerOrganizations/{org}"
)

var peerTable = table{
	container: "peer",
	image:     func(i Images) string { return i.Peer },
	ports:     []int32{peerPort, peerChaincode},
	servicePorts: []descriptor.ServicePort{
		{Port: peerPort, Name: "server"},
		{Port: peerChaincode, Name: "grpc"},
	},
	env: []descriptor.EnvVar{
		{Name: "FABRIC_LOGGING_SPEC", Value: "debug"},
		{Name: "CORE_PEER_ID", Value: "{node}"},
		{Name: "CORE_PEER_ADDRESS", Value: "0.0.0.0:7051"},
		{Name: "CORE_PEER_LOCALMSPID", Value: "{mspid}"},
		{Name: "CORE_PEER_MSPCONFIGPATH", Value: peerMSPDir},
		{Name: "CORE_LEDGER_STATE_STATEDATABASE", Value: "{statedb}"},
		{Name: "CORE_LEDGER_STATE_COUCHDBCONFIG_COUCHDBADDRESS", Value: "{couchAddress}"},
		{Name: "CORE_LEDGER_STATE_COUCHDBCONFIG_USERNAME", Value: "{couchUser}"},
		{Name: "CORE_LEDGER_STATE_COUCHDBCONFIG_PASSWORD", Value: "{couchPassword}"},
	},
	mounts: []descriptor.VolumeMount{
		{MountPath: "/var/hyperledger/configtx", SubPath: "{netRoot}"},
		{MountPath: peerMSPDir, SubPath: peerOrgDir + "/peers/{node}/msp"},
		{MountPath: "/etc/hyperledger/msp/users", SubPath: peerOrgDir + "/users"},
	},
	command: []string{"peer", "node", "start"},
}
