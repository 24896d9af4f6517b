package grammar

import "slices"

// Entry is the grammar rule for a single tag type: where it may appear, what
// it may contain and whether it carries text.
type Entry struct {
	typ      TagType
	parents  []TagType
	children []TagType
	value    bool
}

// Type returns the tag type the entry describes.
func (e Entry) Type() TagType { return e.typ }

// Name returns the document tag name.
func (e Entry) Name() string { return e.typ.String() }

// IsValue reports whether the tag is a leaf that accumulates text.
func (e Entry) IsValue() bool { return e.value }

// IsRoot reports whether the tag declares no allowed parent.
func (e Entry) IsRoot() bool { return len(e.parents) == 0 }

// AllowsParent reports whether a tag of this type may be placed under parent.
func (e Entry) AllowsParent(parent TagType) bool {
	return slices.Contains(e.parents, parent)
}

// AllowsChild reports whether a tag of this type may contain child.
func (e Entry) AllowsChild(child TagType) bool {
	return slices.Contains(e.children, child)
}

// Parents returns a copy of the allowed parent types.
func (e Entry) Parents() []TagType { return slices.Clone(e.parents) }

// Children returns a copy of the allowed child types.
func (e Entry) Children() []TagType { return slices.Clone(e.children) }

func structural(t TagType, parents []TagType, children ...TagType) Entry {
	return Entry{typ: t, parents: parents, children: children}
}

func leaf(t TagType, parents ...TagType) Entry {
	return Entry{typ: t, parents: parents, value: true}
}

func under(parents ...TagType) []TagType { return parents }

// registry is indexed by TagType and never modified after initialization.
var registry = [...]Entry{
	Workflow: structural(Workflow, nil, Modules),
	Modules:  structural(Modules, under(Workflow), Module),
	Module: structural(Module, under(Modules),
		Name, ExecutionType, TransportType, ExecutablePath,
		StartCommandLineArgs, StopCommandLine, ModuleParameters,
		EnvironmentVariables, InputFileName, OutputFileName, HasState,
		StateFileName, IsTransferable, InputBatches, OutputBatches,
		IsStarting, IsFinishing),

	ExecutionType:   leaf(ExecutionType, Module),
	TransportType:   leaf(TransportType, Module),
	ExecutablePath:  leaf(ExecutablePath, Module),
	StopCommandLine: leaf(StopCommandLine, Module),
	InputFileName:   leaf(InputFileName, Module),
	OutputFileName:  leaf(OutputFileName, Module),
	HasState:        leaf(HasState, Module),
	StateFileName:   leaf(StateFileName, Module),
	IsTransferable:  leaf(IsTransferable, Module),
	IsStarting:      leaf(IsStarting, Module),
	IsFinishing:     leaf(IsFinishing, Module),

	StartCommandLineArgs: structural(StartCommandLineArgs, under(Module), Argument),
	Argument:             leaf(Argument, StartCommandLineArgs),

	ModuleParameters:     structural(ModuleParameters, under(Module), Parameter),
	Parameter:            structural(Parameter, under(ModuleParameters), Name, Value),
	EnvironmentVariables: structural(EnvironmentVariables, under(Module), Variable),
	Variable:             structural(Variable, under(EnvironmentVariables), Name, Value),
	Name:                 leaf(Name, Module, Parameter, Variable),
	Value:                leaf(Value, Parameter, Variable),

	InputBatches: structural(InputBatches, under(Module), InputBatch),
	InputBatch: structural(InputBatch, under(InputBatches),
		InputBatchType, DistributorName, SourceChannels, InputBatchChannels),
	InputBatchType:     leaf(InputBatchType, InputBatch),
	DistributorName:    leaf(DistributorName, InputBatch),
	SourceChannels:     structural(SourceChannels, under(InputBatch), ChannelName),
	InputBatchChannels: structural(InputBatchChannels, under(InputBatch), ChannelName),
	ChannelName:        leaf(ChannelName, SourceChannels, InputBatchChannels, OutputChannel),

	OutputBatches: structural(OutputBatches, under(Module), OutputBatch),
	OutputBatch: structural(OutputBatch, under(OutputBatches),
		OutputBatchType, CollectorName, OutputChannels),
	OutputBatchType: leaf(OutputBatchType, OutputBatch),
	CollectorName:   leaf(CollectorName, OutputBatch),
	OutputChannels:  structural(OutputChannels, under(OutputBatch), OutputChannel),
	OutputChannel: structural(OutputChannel, under(OutputChannels),
		ChannelName, ChannelConvertedName, ReceiverName),
	ChannelConvertedName: leaf(ChannelConvertedName, OutputChannel),
	ReceiverName:         leaf(ReceiverName, OutputChannel),
}

var byName = indexByName()

func indexByName() map[string]TagType {
	idx := make(map[string]TagType, len(registry))
	for _, e := range registry {
		if e.typ != TagUndefined {
			idx[e.typ.String()] = e.typ
		}
	}
	return idx
}

// Lookup resolves a document tag name to its grammar entry. Names are case
// sensitive.
func Lookup(name string) (Entry, bool) {
	t, ok := byName[name]
	if !ok {
		return Entry{}, false
	}
	return registry[t], true
}

// EntryFor returns the grammar entry of a defined tag type.
func EntryFor(t TagType) (Entry, bool) {
	if t <= TagUndefined || int(t) >= len(registry) {
		return Entry{}, false
	}
	return registry[t], true
}

// IsTagName reports whether name is a tag defined by the grammar.
func IsTagName(name string) bool {
	_, ok := byName[name]
	return ok
}
