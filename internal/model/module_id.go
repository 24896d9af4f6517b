// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "fmt"

// WorkflowID is the 1-based declaration position of a module.
type WorkflowID uint

// InstanceID identifies a running copy of a module.
type InstanceID uint

const (
	// WorkflowIDUndefined marks an absent module reference.
	WorkflowIDUndefined WorkflowID = 0
	// InstanceIDUndefined marks a module that has not been started.
	InstanceIDUndefined InstanceID = 0
)

// IsDefined reports whether the id refers to a module.
func (id WorkflowID) IsDefined() bool {
	return id != WorkflowIDUndefined
}

// ModuleID is the full identity of a module. Two ids are equal when both
// parts are equal.
type ModuleID struct {
	WorkflowID WorkflowID `json:"workflowId"`
	InstanceID InstanceID `json:"instanceId"`
}

// String renders the id as "workflow/instance", using "-" for undefined parts.
func (id ModuleID) String() string {
	return fmt.Sprintf("%s/%s", part(uint(id.WorkflowID)), part(uint(id.InstanceID)))
}

func part(v uint) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprint(v)
}
