package fabric

import "github.com/imamik/fabkube/internal/descriptor"

const (
	ordererPort     = 7050
	ordererTLSDir   = "/etc/hyperledger/fabric/tls"
	ordererMSPDir   = "/etc/hyperledger/fabric/msp"
	ordererConfigtx = "/etc/hyperledger/configtx"
	ordererNodeDir  = "{orgRoot}crypto-config/ordererOrganizations/{domain}/orderers/{node}.{domain}"
)

var ordererTable = table{
	container:    "orderer",
	image:        func(i Images) string { return i.Orderer },
	ports:        []int32{ordererPort},
	servicePorts: []descriptor.ServicePort{{Port: ordererPort, Name: "server"}},
	env: []descriptor.EnvVar{
		{Name: "ORDERER_GENERAL_LOGLEVEL", Value: "debug"},
		{Name: "ORDERER_GENERAL_LISTENADDRESS", Value: "0.0.0.0"},
		{Name: "ORDERER_GENERAL_{bootstrap}METHOD", Value: "file"},
		{Name: "ORDERER_GENERAL_{bootstrap}FILE", Value: ordererConfigtx + "/genesis.block"},
		{Name: "ORDERER_GENERAL_LOCALMSPID", Value: "{mspid}"},
		{Name: "ORDERER_GENERAL_LOCALMSPDIR", Value: ordererMSPDir},
		{Name: "ORDERER_GENERAL_TLS_ENABLED", Value: "true"},
		{Name: "ORDERER_GENERAL_TLS_PRIVATEKEY", Value: ordererTLSDir + "/server.key"},
		{Name: "ORDERER_GENERAL_TLS_CERTIFICATE", Value: ordererTLSDir + "/server.crt"},
		{Name: "ORDERER_GENERAL_TLS_ROOTCAS", Value: "[" + ordererTLSDir + "/ca.crt]"},
	},
	mounts: []descriptor.VolumeMount{
		{MountPath: ordererConfigtx, SubPath: "{netRoot}"},
		{MountPath: ordererMSPDir, SubPath: ordererNodeDir + "/msp"},
		{MountPath: ordererTLSDir, SubPath: ordererNodeDir + "/tls"},
	},
	command: []string{"orderer"},
}
