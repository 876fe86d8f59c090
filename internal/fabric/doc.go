// Package fabric synthesizes the Kubernetes descriptors that run a single
// Hyperledger Fabric node: a certificate authority, an orderer or a peer.
//
// Each node type owns a static table of container ports, environment
// contract, crypto material mounts and start command. The tables mirror the
// configuration reference of the Fabric binaries and are rendered against a
// [NodeIdentity] once. Synthesis is pure: no I/O, no errors. An unknown node
// type yields an inert [NodeSpec] whose image is empty.
//
// Crypto material lives on the shared data volume. Sub paths are built from
// a [Layout] so that both the flat and the organization-prefixed directory
// schemes, and both orderer bootstrap variable namings, can be targeted.
package fabric
