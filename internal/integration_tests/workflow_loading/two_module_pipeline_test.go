package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/wrapperflow/internal/app"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/testutil"
)

// Test for: a starting module feeding a finishing module
func TestWorkflowLoading_TwoModulePipeline(t *testing.T) {
	// --- Arrange ---
	doc := testutil.WorkflowXML(2,
		testutil.ModuleXML("A", "External", "Pipe", "/usr/bin/a",
			"<isStarting>yes</isStarting>",
			testutil.OutputBatchXML("Regular", "", [3]string{"out", "in", "B"}),
		),
		testutil.ModuleXML("B", "Internal", "File", "/usr/bin/b",
			testutil.InputBatchXML("Regular", "", []string{"out"}, []string{"in"}),
			"<isFinishing>yes</isFinishing>",
		),
	)

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"main.xml": doc}, app.Config{WorkflowPath: "main.xml"})

	// --- Assert ---
	a := testutil.RequireModule(t, result, "A", 1)
	b := testutil.RequireModule(t, result, "B", 2)

	assert.True(t, a.IsStarting)
	assert.True(t, b.IsFinishing)
	require.Len(t, a.OutputBatches, 1)
	assert.Equal(t, []model.OutputChannelInfo{{Receiver: 2, Name: "out", ConvertedName: "in"}}, a.OutputBatches[0].Channels)
	assert.Equal(t, model.WorkflowIDUndefined, b.InputBatches[0].Source)

	assert.Empty(t, result.Result.Unreachable)
	assert.Nil(t, result.Result.Loop)
	assert.Contains(t, result.Output, "A.out -> B.in")
	testutil.AssertLogged(t, result, "Workflow loaded.", "modules=2")
}
