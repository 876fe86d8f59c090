package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Subcommands(t *testing.T) {
	cmd := Node()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"render", "create", "delete"}, names)
}

func TestNodeCreate_Flags(t *testing.T) {
	cmd := nodeCreate()

	for _, name := range []string{"type", "id", "name", "org", "network", "version", "agent-id", "namespace", "wait"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestNodeRender_RequiredFlags(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"node", "render", "--type", "peer"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
}

func TestNodeDelete_RequiresName(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"node", "delete"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestNamespaceAndStorage_Subcommands(t *testing.T) {
	ns := Namespace()
	require.Len(t, ns.Commands(), 1)
	assert.Equal(t, "ensure", ns.Commands()[0].Name())

	storage := Storage()
	require.Len(t, storage.Commands(), 1)
	assert.Equal(t, "ensure", storage.Commands()[0].Name())
}

func TestFirstArg(t *testing.T) {
	assert.Empty(t, firstArg(nil))
	assert.Equal(t, "fabric", firstArg([]string{"fabric"}))
}
