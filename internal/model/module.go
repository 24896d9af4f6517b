// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Parameter is one ordered name/value pair passed to a module.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// InputBatchInfo describes a group of channels a module consumes together.
type InputBatchInfo struct {
	// SourceChannels name the channels on the producing side.
	SourceChannels []string `json:"sourceChannels"`
	// Source is the distributor feeding this batch, if any.
	Source WorkflowID `json:"source"`
	// Channels are the batch's own channel names.
	Channels []string       `json:"channels"`
	Type     InputBatchType `json:"type"`
}

// OutputChannelInfo is one channel of an output batch and the module that
// receives it.
type OutputChannelInfo struct {
	Receiver      WorkflowID `json:"receiver"`
	Name          string     `json:"name"`
	ConvertedName string     `json:"convertedName"`
}

// OutputBatchInfo describes a group of channels a module produces together.
type OutputBatchInfo struct {
	// Receiver is the collector gathering this batch, if any.
	Receiver WorkflowID          `json:"receiver"`
	Channels []OutputChannelInfo `json:"channels"`
	Type     OutputBatchType     `json:"type"`
}

// ModuleInfo is the complete description of one workflow module.
type ModuleInfo struct {
	Name                 string            `json:"name"`
	ID                   ModuleID          `json:"id"`
	ExecutionType        ExecutionType     `json:"executionType"`
	TransportType        TransportType     `json:"transportType"`
	ExecutablePath       string            `json:"executablePath"`
	StartCommandLineArgs []string          `json:"startCommandLineArgs"`
	StopCommandLine      string            `json:"stopCommandLine"`
	Parameters           []Parameter       `json:"parameters"`
	EnvironmentVariables map[string]string `json:"environmentVariables"`
	InputFileName        string            `json:"inputFileName"`
	OutputFileName       string            `json:"outputFileName"`
	HasState             bool              `json:"hasState"`
	StateFileName        string            `json:"stateFileName"`
	IsTransferable       bool              `json:"isTransferable"`
	// TempDirectoryPath is assigned by the runtime; documents never set it.
	TempDirectoryPath string            `json:"tempDirectoryPath,omitempty"`
	InputBatches      []InputBatchInfo  `json:"inputBatches"`
	OutputBatches     []OutputBatchInfo `json:"outputBatches"`
	IsStarting        bool              `json:"isStarting"`
	IsFinishing       bool              `json:"isFinishing"`
}

// Receivers returns the distinct modules this module sends data to, in the
// order they first appear in its output batches.
func (m *ModuleInfo) Receivers() []WorkflowID {
	var out []WorkflowID
	seen := make(map[WorkflowID]struct{})
	add := func(id WorkflowID) {
		if !id.IsDefined() {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, batch := range m.OutputBatches {
		add(batch.Receiver)
		for _, ch := range batch.Channels {
			add(ch.Receiver)
		}
	}
	return out
}

// Sources returns the distinct distributors feeding this module.
func (m *ModuleInfo) Sources() []WorkflowID {
	var out []WorkflowID
	seen := make(map[WorkflowID]struct{})
	for _, batch := range m.InputBatches {
		if !batch.Source.IsDefined() {
			continue
		}
		if _, ok := seen[batch.Source]; ok {
			continue
		}
		seen[batch.Source] = struct{}{}
		out = append(out, batch.Source)
	}
	return out
}
