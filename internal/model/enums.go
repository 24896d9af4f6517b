// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the closed enumerations of a module description. Each
// has an undefined zero value and exactly two document literals, matched
// case-sensitively.

package model

import (
	"fmt"
	"slices"
)

// ExecutionType tells whether a module runs inside the host process.
type ExecutionType int

const (
	ExecutionUndefined ExecutionType = iota
	ExecutionInternal
	ExecutionExternal
)

// TransportType tells how a module exchanges data with the host.
type TransportType int

const (
	TransportUndefined TransportType = iota
	TransportPipe
	TransportFile
)

// InputBatchType tells whether an input batch is fed by a collector.
type InputBatchType int

const (
	InputBatchUndefined InputBatchType = iota
	InputBatchRegular
	InputBatchCollector
)

// OutputBatchType tells whether an output batch feeds a distributor.
type OutputBatchType int

const (
	OutputBatchUndefined OutputBatchType = iota
	OutputBatchRegular
	OutputBatchDistributor
)

var (
	executionTypeNames   = []string{"", "Internal", "External"}
	transportTypeNames   = []string{"", "Pipe", "File"}
	inputBatchTypeNames  = []string{"", "Regular", "Collector"}
	outputBatchTypeNames = []string{"", "Regular", "Distributor"}
)

func nameOf[T ~int](names []string, v T) string {
	if v <= 0 || int(v) >= len(names) {
		return "undefined"
	}
	return names[v]
}

func parseLiteral[T ~int](names []string, s string) (T, bool) {
	for i := 1; i < len(names); i++ {
		if names[i] == s {
			return T(i), true
		}
	}
	return 0, false
}

func marshalLiteral[T ~int](names []string, v T) ([]byte, error) {
	if v <= 0 || int(v) >= len(names) {
		return nil, fmt.Errorf("cannot marshal undefined value %d", int(v))
	}
	return []byte(names[v]), nil
}

func (t ExecutionType) String() string   { return nameOf(executionTypeNames, t) }
func (t TransportType) String() string   { return nameOf(transportTypeNames, t) }
func (t InputBatchType) String() string  { return nameOf(inputBatchTypeNames, t) }
func (t OutputBatchType) String() string { return nameOf(outputBatchTypeNames, t) }

// MarshalText implements encoding.TextMarshaler.
func (t ExecutionType) MarshalText() ([]byte, error) { return marshalLiteral(executionTypeNames, t) }

// MarshalText implements encoding.TextMarshaler.
func (t TransportType) MarshalText() ([]byte, error) { return marshalLiteral(transportTypeNames, t) }

// MarshalText implements encoding.TextMarshaler.
func (t InputBatchType) MarshalText() ([]byte, error) {
	return marshalLiteral(inputBatchTypeNames, t)
}

// MarshalText implements encoding.TextMarshaler.
func (t OutputBatchType) MarshalText() ([]byte, error) {
	return marshalLiteral(outputBatchTypeNames, t)
}

// ParseExecutionType matches "Internal" or "External" exactly.
func ParseExecutionType(s string) (ExecutionType, bool) {
	return parseLiteral[ExecutionType](executionTypeNames, s)
}

// ParseTransportType matches "Pipe" or "File" exactly.
func ParseTransportType(s string) (TransportType, bool) {
	return parseLiteral[TransportType](transportTypeNames, s)
}

// ParseInputBatchType matches "Regular" or "Collector" exactly.
func ParseInputBatchType(s string) (InputBatchType, bool) {
	return parseLiteral[InputBatchType](inputBatchTypeNames, s)
}

// ParseOutputBatchType matches "Regular" or "Distributor" exactly.
func ParseOutputBatchType(s string) (OutputBatchType, bool) {
	return parseLiteral[OutputBatchType](outputBatchTypeNames, s)
}

// ExecutionTypeLiterals returns the accepted document literals.
func ExecutionTypeLiterals() []string { return slices.Clone(executionTypeNames[1:]) }

// TransportTypeLiterals returns the accepted document literals.
func TransportTypeLiterals() []string { return slices.Clone(transportTypeNames[1:]) }

// InputBatchTypeLiterals returns the accepted document literals.
func InputBatchTypeLiterals() []string { return slices.Clone(inputBatchTypeNames[1:]) }

// OutputBatchTypeLiterals returns the accepted document literals.
func OutputBatchTypeLiterals() []string { return slices.Clone(outputBatchTypeNames[1:]) }
