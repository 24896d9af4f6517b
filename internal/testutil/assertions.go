package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/wrapperflow/internal/model"
)

// RequireModule fetches the named module from the harness result and checks
// its workflow id.
func RequireModule(t *testing.T, result *HarnessResult, name string, id model.WorkflowID) *model.ModuleInfo {
	t.Helper()

	require.NoError(t, result.Err)
	require.NotNil(t, result.Result)
	m, ok := result.Result.Workflow.ByName(name)
	require.True(t, ok, "module %q not found", name)
	require.Equal(t, id, m.ID.WorkflowID, "workflow id of module %q", name)
	return m
}

// AssertLogged checks that the captured logs contain every given substring.
func AssertLogged(t *testing.T, result *HarnessResult, substrings ...string) {
	t.Helper()
	for _, s := range substrings {
		require.True(t, strings.Contains(result.LogOutput, s), "expected log output to contain %q", s)
	}
}
