package cli

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusFilter(t *testing.T) {
	filter := parseStatusFilter([]string{"CREATE_COMPLETE", "UPDATE_COMPLETE"})
	assert.Equal(t, []types.StackStatus{
		types.StackStatusCreateComplete,
		types.StackStatusUpdateComplete,
	}, filter)

	assert.Empty(t, parseStatusFilter(nil))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"up", "preview", "destroy", "list", "describe"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}

func TestGlobalFlagDefaults(t *testing.T) {
	interval := rootCmd.PersistentFlags().Lookup("poll-interval")
	require.NotNil(t, interval)
	assert.Equal(t, "5", interval.DefValue)

	timeout := rootCmd.PersistentFlags().Lookup("wait-timeout")
	require.NotNil(t, timeout)
	assert.Equal(t, "0", timeout.DefValue)
}
