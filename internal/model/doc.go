// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model is the typed description of a workflow: the ordered list of
// modules, how each one is executed and how data batches flow between them.
//
// # Core Concepts
//
//   - Workflow: the ordered set of modules declared by one document.
//
//   - ModuleInfo: one executable unit. Its ModuleID.WorkflowID is its 1-based
//     position in the declaration order; the InstanceID is assigned at run
//     time and is undefined after loading.
//
//   - InputBatchInfo / OutputBatchInfo: named groups of channels a module
//     consumes or produces together. References to other modules (distributor,
//     collector, receiver) are stored as resolved WorkflowIDs, never as names.
//
// Values in this package hold no references into the document tree they were
// extracted from.
package model
