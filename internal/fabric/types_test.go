package fabric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"orderer0", "Orderer0"},
		{"peer0", "Peer0"},
		{"ORDERER0", "Orderer0"},
		{"pEEr1", "Peer1"},
		{"0peer", "0peer"},
		{"a", "A"},
		{"", ""},
		{"ärger", "Ärger"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.in), "Capitalize(%q)", tt.in)
	}
}

func TestNodeIdentity_MSPID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Orderer0MSP", NodeIdentity{NodeName: "orderer0"}.MSPID())
	assert.Equal(t, "Peer1MSP", NodeIdentity{NodeName: "peer1"}.MSPID())
	assert.Equal(t, "MSP", NodeIdentity{}.MSPID())
}

func TestNodeIdentity_Domain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		org  string
		want string
	}{
		{"org1.example.com", "example.com"},
		{"example.com", "com"},
		{"org1", ""},
		{"", ""},
		{"org1.", ""},
		{".example.com", "example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NodeIdentity{OrgName: tt.org}.Domain(), "org %q", tt.org)
	}
}

func TestNodeIdentity_Validate(t *testing.T) {
	t.Parallel()
	valid := testIdentity("orderer0")

	require.NoError(t, valid.Validate(NodeTypeOrderer))
	require.NoError(t, valid.Validate(NodeTypePeer))

	noDomain := valid
	noDomain.OrgName = "org1"
	err := noDomain.Validate(NodeTypeOrderer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no domain part")
	assert.NoError(t, noDomain.Validate(NodeTypePeer))

	err = NodeIdentity{}.Validate(NodeTypeCA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node id is required")
	assert.Contains(t, err.Error(), "node name is required")
	assert.Contains(t, err.Error(), "version is required")
}

func TestParseNodeType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NodeTypeCA, ParseNodeType("CA"))
	assert.Equal(t, NodeTypeOrderer, ParseNodeType(" Orderer "))
	assert.Equal(t, NodeTypePeer, ParseNodeType("peer"))
	assert.False(t, ParseNodeType("couchdb").Known())
	assert.True(t, ParseNodeType("peer").Known())
}

func TestLayoutFor(t *testing.T) {
	t.Parallel()
	l, err := LayoutFor("v1")
	require.NoError(t, err)
	assert.Equal(t, LayoutV1, l)

	l, err = LayoutFor("")
	require.NoError(t, err)
	assert.Equal(t, LayoutV2, l)

	_, err = LayoutFor("v3")
	require.Error(t, err)
}
