package extract

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/wrapperflow/internal/grammar"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
	"github.com/vk/wrapperflow/internal/xml_adapter"
)

func tree(t *testing.T, doc string) *tagtree.Node {
	t.Helper()
	root, err := tagtree.Build(context.Background(), xml_adapter.NewSource(strings.NewReader(doc)))
	require.NoError(t, err)
	return root
}

// module renders a minimal valid module with extra children appended.
func module(name string, extra ...string) string {
	return fmt.Sprintf(`<module><name>%s</name><executionType>External</executionType>`+
		`<transportType>Pipe</transportType><executablePath>/bin/%s</executablePath>%s</module>`,
		name, strings.ToLower(name), strings.Join(extra, ""))
}

func workflowDoc(count string, modules ...string) string {
	return fmt.Sprintf(`<workflow><modules count="%s">%s</modules></workflow>`, count, strings.Join(modules, ""))
}

const abWorkflow = `<?xml version="1.0"?>
<workflow>
  <modules count="2">
    <module>
      <name>A</name>
      <executionType>External</executionType>
      <transportType>Pipe</transportType>
      <executablePath>/usr/bin/a</executablePath>
      <startCommandLineArgs count="2"><argument>-v</argument><argument>--fast</argument></startCommandLineArgs>
      <moduleParameters count="1">
        <parameter><name>threads</name><value>4</value></parameter>
      </moduleParameters>
      <environmentVariables count="1">
        <variable><name>HOME</name><value>/tmp</value></variable>
      </environmentVariables>
      <isStarting>yes</isStarting>
      <outputBatches count="1">
        <outputBatch>
          <outputBatchType>Regular</outputBatchType>
          <outputChannels count="1">
            <outputChannel>
              <channelName>out</channelName>
              <channelConvertedName>in</channelConvertedName>
              <receiverName>B</receiverName>
            </outputChannel>
          </outputChannels>
        </outputBatch>
      </outputBatches>
    </module>
    <module>
      <name>B</name>
      <executionType>Internal</executionType>
      <transportType>File</transportType>
      <executablePath>/usr/bin/b</executablePath>
      <inputFileName>in.dat</inputFileName>
      <hasState>yes</hasState>
      <stateFileName>b.state</stateFileName>
      <inputBatches count="1">
        <inputBatch>
          <inputBatchType>Regular</inputBatchType>
          <distributorName></distributorName>
          <sourceChannels count="1"><channelName>out</channelName></sourceChannels>
          <inputBatchChannels count="1"><channelName>in</channelName></inputBatchChannels>
        </inputBatch>
      </inputBatches>
      <isFinishing>yes</isFinishing>
    </module>
  </modules>
</workflow>`

func TestWorkflow_TwoModules(t *testing.T) {
	wf, err := Workflow(context.Background(), tree(t, abWorkflow))
	require.NoError(t, err)

	want := &model.Workflow{Modules: []model.ModuleInfo{
		{
			Name:                 "A",
			ID:                   model.ModuleID{WorkflowID: 1},
			ExecutionType:        model.ExecutionExternal,
			TransportType:        model.TransportPipe,
			ExecutablePath:       "/usr/bin/a",
			StartCommandLineArgs: []string{"-v", "--fast"},
			Parameters:           []model.Parameter{{Name: "threads", Value: "4"}},
			EnvironmentVariables: map[string]string{"HOME": "/tmp"},
			IsStarting:           true,
			OutputBatches: []model.OutputBatchInfo{{
				Type:     model.OutputBatchRegular,
				Channels: []model.OutputChannelInfo{{Receiver: 2, Name: "out", ConvertedName: "in"}},
			}},
		},
		{
			Name:           "B",
			ID:             model.ModuleID{WorkflowID: 2},
			ExecutionType:  model.ExecutionInternal,
			TransportType:  model.TransportFile,
			ExecutablePath: "/usr/bin/b",
			InputFileName:  "in.dat",
			HasState:       true,
			StateFileName:  "b.state",
			InputBatches: []model.InputBatchInfo{{
				Type:           model.InputBatchRegular,
				SourceChannels: []string{"out"},
				Channels:       []string{"in"},
			}},
			IsFinishing: true,
		},
	}}

	if diff := cmp.Diff(want, wf); diff != "" {
		t.Errorf("workflow mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, model.InstanceIDUndefined, wf.Modules[0].ID.InstanceID)
	assert.Empty(t, wf.Modules[0].TempDirectoryPath)
}

func TestWorkflow_Idempotent(t *testing.T) {
	root := tree(t, abWorkflow)

	first, err := Workflow(context.Background(), root)
	require.NoError(t, err)
	second, err := Workflow(context.Background(), root)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestWorkflow_ReferencesResolveToDeclarationPosition(t *testing.T) {
	collector := `<outputBatches count="1"><outputBatch><outputBatchType>Regular</outputBatchType>` +
		`<collectorName>C</collectorName><outputChannels count="2">` +
		`<outputChannel><channelName>x</channelName><channelConvertedName>x1</channelConvertedName><receiverName>C</receiverName></outputChannel>` +
		`<outputChannel><channelName>y</channelName><channelConvertedName>y1</channelConvertedName><receiverName>A</receiverName></outputChannel>` +
		`</outputChannels></outputBatch></outputBatches>`
	distributed := `<inputBatches count="1"><inputBatch><inputBatchType>Collector</inputBatchType>` +
		`<distributorName>B</distributorName>` +
		`<sourceChannels count="0"></sourceChannels><inputBatchChannels count="0"></inputBatchChannels>` +
		`</inputBatch></inputBatches>`

	doc := workflowDoc("3", module("A", distributed), module("B", collector), module("C"))
	wf, err := Workflow(context.Background(), tree(t, doc))
	require.NoError(t, err)
	require.Len(t, wf.Modules, 3)

	for i, m := range wf.Modules {
		assert.Equal(t, model.WorkflowID(i+1), m.ID.WorkflowID)
	}

	in := wf.Modules[0].InputBatches[0]
	assert.Equal(t, model.WorkflowID(2), in.Source, "distributor B is declared second")
	assert.Equal(t, model.InputBatchCollector, in.Type)
	assert.Empty(t, in.SourceChannels)

	out := wf.Modules[1].OutputBatches[0]
	assert.Equal(t, model.WorkflowID(3), out.Receiver, "collector C is declared later")
	assert.Equal(t, model.WorkflowID(3), out.Channels[0].Receiver)
	assert.Equal(t, model.WorkflowID(1), out.Channels[1].Receiver)
}

func TestWorkflow_OptionalChildrenDefault(t *testing.T) {
	wf, err := Workflow(context.Background(), tree(t, workflowDoc("1", module("Solo"))))
	require.NoError(t, err)

	m := wf.Modules[0]
	assert.Nil(t, m.StartCommandLineArgs)
	assert.Nil(t, m.Parameters)
	assert.Nil(t, m.EnvironmentVariables)
	assert.Nil(t, m.InputBatches)
	assert.Nil(t, m.OutputBatches)
	assert.Empty(t, m.StopCommandLine)
	assert.False(t, m.HasState)
	assert.False(t, m.IsTransferable)
	assert.False(t, m.IsStarting)
	assert.False(t, m.IsFinishing)
}

func TestWorkflow_Failures(t *testing.T) {
	outputTo := func(receiver string) string {
		return `<outputBatches count="1"><outputBatch><outputBatchType>Regular</outputBatchType>` +
			`<outputChannels count="1"><outputChannel><channelName>out</channelName>` +
			`<channelConvertedName>in</channelConvertedName><receiverName>` + receiver +
			`</receiverName></outputChannel></outputChannels></outputBatch></outputBatches>`
	}

	testCases := []struct {
		name  string
		doc   string
		kind  parseerr.Kind
		check func(t *testing.T, perr *parseerr.Error)
	}{
		{
			name: "modules count exceeds children",
			doc:  workflowDoc("3", module("A"), module("B")),
			kind: parseerr.CountMismatch,
		},
		{
			name: "modules count below children",
			doc:  workflowDoc("1", module("A"), module("B")),
			kind: parseerr.CountMismatch,
		},
		{
			name: "zero modules",
			doc:  workflowDoc("0"),
			kind: parseerr.EmptyWorkflow,
		},
		{
			name: "invalid modules count",
			doc:  workflowDoc("two", module("A")),
			kind: parseerr.InvalidCountAttribute,
		},
		{
			name: "missing modules count",
			doc:  `<workflow><modules>` + module("A") + `</modules></workflow>`,
			kind: parseerr.MissingAttribute,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "modules", perr.Tag)
				assert.Equal(t, CountAttribute, perr.Field)
			},
		},
		{
			name: "missing modules",
			doc:  `<workflow></workflow>`,
			kind: parseerr.MissingRequiredChild,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "modules", perr.Tag)
				assert.Equal(t, "workflow", perr.Parent)
			},
		},
		{
			name: "wrong case execution type",
			doc: workflowDoc("1", `<module><name>A</name><executionType>internal</executionType>`+
				`<transportType>Pipe</transportType><executablePath>/a</executablePath></module>`),
			kind: parseerr.InvalidEnumLiteral,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "executionType", perr.Tag)
				assert.Equal(t, "internal", perr.Value)
				assert.Equal(t, []string{"Internal", "External"}, perr.Expected)
			},
		},
		{
			name: "missing execution type",
			doc: workflowDoc("1", `<module><name>A</name>`+
				`<transportType>Pipe</transportType><executablePath>/a</executablePath></module>`),
			kind: parseerr.MissingRequiredChild,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "executionType", perr.Tag)
				assert.Equal(t, "module", perr.Parent)
			},
		},
		{
			name: "empty executable path",
			doc: workflowDoc("1", `<module><name>A</name><executionType>Internal</executionType>`+
				`<transportType>Pipe</transportType><executablePath></executablePath></module>`),
			kind: parseerr.EmptyRequiredField,
		},
		{
			name: "empty module name",
			doc:  workflowDoc("1", module("")),
			kind: parseerr.EmptyRequiredField,
		},
		{
			name: "duplicate module name",
			doc:  workflowDoc("2", module("A"), module("A")),
			kind: parseerr.DuplicateModuleName,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "A", perr.Value)
			},
		},
		{
			name: "empty receiver name",
			doc:  workflowDoc("1", module("A", outputTo(""))),
			kind: parseerr.EmptyRequiredField,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "receiverName", perr.Field)
				assert.Equal(t, "outputChannel", perr.Parent)
			},
		},
		{
			name: "unknown receiver",
			doc:  workflowDoc("1", module("A", outputTo("Z"))),
			kind: parseerr.UnresolvedReference,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "Z", perr.Value)
			},
		},
		{
			name: "receiver names are case sensitive",
			doc:  workflowDoc("2", module("A", outputTo("b")), module("B")),
			kind: parseerr.UnresolvedReference,
		},
		{
			name: "unknown distributor",
			doc: workflowDoc("1", module("A", `<inputBatches count="1"><inputBatch>`+
				`<inputBatchType>Regular</inputBatchType><distributorName>Nope</distributorName>`+
				`<sourceChannels count="0"></sourceChannels><inputBatchChannels count="0"></inputBatchChannels>`+
				`</inputBatch></inputBatches>`)),
			kind: parseerr.UnresolvedReference,
		},
		{
			name: "empty channel name",
			doc: workflowDoc("1", module("A", `<inputBatches count="1"><inputBatch>`+
				`<inputBatchType>Regular</inputBatchType>`+
				`<sourceChannels count="1"><channelName></channelName></sourceChannels>`+
				`<inputBatchChannels count="0"></inputBatchChannels>`+
				`</inputBatch></inputBatches>`)),
			kind: parseerr.EmptyRequiredField,
		},
		{
			name: "missing input batch channels",
			doc: workflowDoc("1", module("A", `<inputBatches count="1"><inputBatch>`+
				`<inputBatchType>Regular</inputBatchType>`+
				`<sourceChannels count="0"></sourceChannels>`+
				`</inputBatch></inputBatches>`)),
			kind: parseerr.MissingRequiredChild,
		},
		{
			name: "argument count mismatch",
			doc:  workflowDoc("1", module("A", `<startCommandLineArgs count="1"><argument>a</argument><argument>b</argument></startCommandLineArgs>`)),
			kind: parseerr.CountMismatch,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "startCommandLineArgs", perr.Tag)
			},
		},
		{
			name: "flag written as true",
			doc:  workflowDoc("1", module("A", `<isStarting>true</isStarting>`)),
			kind: parseerr.InvalidEnumLiteral,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, []string{"yes", "no"}, perr.Expected)
			},
		},
		{
			name: "parameter without value",
			doc:  workflowDoc("1", module("A", `<moduleParameters count="1"><parameter><name>p</name></parameter></moduleParameters>`)),
			kind: parseerr.MissingRequiredChild,
			check: func(t *testing.T, perr *parseerr.Error) {
				assert.Equal(t, "value", perr.Tag)
				assert.Equal(t, "parameter", perr.Parent)
			},
		},
		{
			name: "output batch type from input side",
			doc: workflowDoc("1", module("A", `<outputBatches count="1"><outputBatch>`+
				`<outputBatchType>Collector</outputBatchType><outputChannels count="0"></outputChannels>`+
				`</outputBatch></outputBatches>`)),
			kind: parseerr.InvalidEnumLiteral,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wf, err := Workflow(context.Background(), tree(t, tc.doc))
			require.Error(t, err)
			assert.Nil(t, wf)
			assert.ErrorIs(t, err, tc.kind)

			if tc.check != nil {
				var perr *parseerr.Error
				require.ErrorAs(t, err, &perr)
				tc.check(t, perr)
			}
		})
	}
}

func TestWorkflow_RootMustBeWorkflow(t *testing.T) {
	_, err := Workflow(context.Background(), nil)
	assert.ErrorIs(t, err, parseerr.UnsupportedConversion)

	_, err = Workflow(context.Background(), &tagtree.Node{Type: grammar.Module})
	assert.ErrorIs(t, err, parseerr.UnsupportedConversion)
}

func TestWorkflow_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Workflow(ctx, tree(t, abWorkflow))
	assert.ErrorIs(t, err, context.Canceled)
}
