package fabric

import "github.com/imamik/fabkube/internal/descriptor"

const (
	caHome      = "/etc/hyperledger/fabric-ca-server"
	caConfigDir = "/etc/hyperledger/fabric-ca-server-config"
	caCertFile  = caConfigDir + "/ca.{org}-cert.pem"
	caKeyFile   = caConfigDir + "/priv_sk"
	caPort      = 7054
)

var caTable = table{
	container:    "ca-server",
	image:        func(i Images) string { return i.CA },
	ports:        []int32{caPort},
	servicePorts: []descriptor.ServicePort{{Port: caPort, Name: "server"}},
	env: []descriptor.EnvVar{
		{Name: "FABRIC_CA_HOME", Value: caHome},
		{Name: "FABRIC_CA_SERVER_CA_NAME", Value: "{node}"},
		{Name: "FABRIC_CA_SERVER_TLS_ENABLED", Value: "true"},
		{Name: "FABRIC_CA_SERVER_TLS_CERTFILE", Value: caCertFile},
		{Name: "FABRIC_CA_SERVER_TLS_KEYFILE", Value: caKeyFile},
		{Name: "FABRIC_CA_SERVER_CSR_HOSTS", Value: "{node},localhost"},
	},
	mounts: []descriptor.VolumeMount{
		{
			MountPath: caConfigDir,
			SubPath:   "{orgRoot}crypto-config/peerOrganizations/{org}/ca/",
		},
	},
	command: []string{"fabric-ca-server"},
	args: []string{
		"start",
		"--ca.certfile", caCertFile,
		"--ca.keyfile", caKeyFile,
		"-b", "admin:adminpw",
		"-d",
	},
}
