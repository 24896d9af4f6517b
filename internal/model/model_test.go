// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums_ExactLiteralsOnly(t *testing.T) {
	testCases := []struct {
		name   string
		parse  func(string) (int, bool)
		accept map[string]int
		reject []string
	}{
		{
			name:   "execution type",
			parse:  func(s string) (int, bool) { v, ok := ParseExecutionType(s); return int(v), ok },
			accept: map[string]int{"Internal": int(ExecutionInternal), "External": int(ExecutionExternal)},
			reject: []string{"internal", "EXTERNAL", "", " Internal", "undefined"},
		},
		{
			name:   "transport type",
			parse:  func(s string) (int, bool) { v, ok := ParseTransportType(s); return int(v), ok },
			accept: map[string]int{"Pipe": int(TransportPipe), "File": int(TransportFile)},
			reject: []string{"pipe", "Socket", ""},
		},
		{
			name:   "input batch type",
			parse:  func(s string) (int, bool) { v, ok := ParseInputBatchType(s); return int(v), ok },
			accept: map[string]int{"Regular": int(InputBatchRegular), "Collector": int(InputBatchCollector)},
			reject: []string{"Distributor", "regular"},
		},
		{
			name:   "output batch type",
			parse:  func(s string) (int, bool) { v, ok := ParseOutputBatchType(s); return int(v), ok },
			accept: map[string]int{"Regular": int(OutputBatchRegular), "Distributor": int(OutputBatchDistributor)},
			reject: []string{"Collector", "distributor"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for literal, want := range tc.accept {
				got, ok := tc.parse(literal)
				require.True(t, ok, "literal %q", literal)
				assert.Equal(t, want, got)
			}
			for _, literal := range tc.reject {
				got, ok := tc.parse(literal)
				assert.False(t, ok, "literal %q", literal)
				assert.Zero(t, got)
			}
		})
	}
}

func TestEnumLiterals(t *testing.T) {
	assert.Equal(t, []string{"Internal", "External"}, ExecutionTypeLiterals())
	assert.Equal(t, []string{"Pipe", "File"}, TransportTypeLiterals())
	assert.Equal(t, []string{"Regular", "Collector"}, InputBatchTypeLiterals())
	assert.Equal(t, []string{"Regular", "Distributor"}, OutputBatchTypeLiterals())

	lits := ExecutionTypeLiterals()
	lits[0] = "changed"
	assert.Equal(t, "Internal", ExecutionInternal.String())
}

func TestEnum_StringAndMarshal(t *testing.T) {
	assert.Equal(t, "undefined", ExecutionUndefined.String())
	assert.Equal(t, "File", TransportFile.String())
	assert.Equal(t, "undefined", OutputBatchType(9).String())

	_, err := TransportUndefined.MarshalText()
	assert.Error(t, err)

	b, err := json.Marshal(struct {
		T InputBatchType `json:"t"`
	}{InputBatchCollector})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"Collector"}`, string(b))
}

func TestModuleID(t *testing.T) {
	a := ModuleID{WorkflowID: 2}
	b := ModuleID{WorkflowID: 2, InstanceID: InstanceIDUndefined}
	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.NotEqual(t, a, ModuleID{WorkflowID: 2, InstanceID: 1})
	assert.Equal(t, "2/-", a.String())
	assert.Equal(t, "-/-", ModuleID{}.String())
	assert.False(t, WorkflowIDUndefined.IsDefined())
}

func sampleWorkflow() *Workflow {
	return &Workflow{Modules: []ModuleInfo{
		{
			Name:       "A",
			ID:         ModuleID{WorkflowID: 1},
			IsStarting: true,
			OutputBatches: []OutputBatchInfo{{
				Receiver: 3,
				Channels: []OutputChannelInfo{
					{Receiver: 2, Name: "x", ConvertedName: "in"},
					{Receiver: 2, Name: "y", ConvertedName: "in2"},
					{Receiver: 3, Name: "z", ConvertedName: "in3"},
				},
			}},
		},
		{
			Name:         "B",
			ID:           ModuleID{WorkflowID: 2},
			InputBatches: []InputBatchInfo{{Source: 1}, {Source: 1}, {}},
		},
		{Name: "C", ID: ModuleID{WorkflowID: 3}, IsFinishing: true},
	}}
}

func TestWorkflow_Lookups(t *testing.T) {
	wf := sampleWorkflow()

	m, ok := wf.Module(2)
	require.True(t, ok)
	assert.Equal(t, "B", m.Name)

	_, ok = wf.Module(0)
	assert.False(t, ok)
	_, ok = wf.Module(4)
	assert.False(t, ok)

	m, ok = wf.ByName("C")
	require.True(t, ok)
	assert.Equal(t, WorkflowID(3), m.ID.WorkflowID)
	_, ok = wf.ByName("c")
	assert.False(t, ok)

	assert.Equal(t, []WorkflowID{1}, wf.Starting())
	assert.Equal(t, []WorkflowID{3}, wf.Finishing())
	assert.Equal(t, "A", wf.NameOf(1))
	assert.Equal(t, "", wf.NameOf(7))
}

func TestModuleInfo_ReceiversAndSources(t *testing.T) {
	wf := sampleWorkflow()

	assert.Equal(t, []WorkflowID{3, 2}, wf.Modules[0].Receivers())
	assert.Empty(t, wf.Modules[0].Sources())
	assert.Equal(t, []WorkflowID{1}, wf.Modules[1].Sources())
	assert.Empty(t, wf.Modules[2].Receivers())
}
