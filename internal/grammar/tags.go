package grammar

// TagType identifies one structural element of a workflow document.
type TagType int

const (
	TagUndefined TagType = iota

	Workflow
	Modules
	Module
	ExecutionType
	TransportType
	ExecutablePath
	StartCommandLineArgs
	Argument
	StopCommandLine
	ModuleParameters
	Parameter
	Name
	Value
	EnvironmentVariables
	Variable
	InputFileName
	OutputFileName
	HasState
	StateFileName
	IsTransferable
	InputBatches
	InputBatch
	InputBatchType
	DistributorName
	SourceChannels
	ChannelName
	InputBatchChannels
	OutputBatches
	OutputBatch
	OutputBatchType
	CollectorName
	OutputChannels
	OutputChannel
	ChannelConvertedName
	ReceiverName
	IsStarting
	IsFinishing
)

// tagNames holds the literal document name of every tag type.
var tagNames = [...]string{
	TagUndefined:         "",
	Workflow:             "workflow",
	Modules:              "modules",
	Module:               "module",
	ExecutionType:        "executionType",
	TransportType:        "transportType",
	ExecutablePath:       "executablePath",
	StartCommandLineArgs: "startCommandLineArgs",
	Argument:             "argument",
	StopCommandLine:      "stopCommandLine",
	ModuleParameters:     "moduleParameters",
	Parameter:            "parameter",
	Name:                 "name",
	Value:                "value",
	EnvironmentVariables: "environmentVariables",
	Variable:             "variable",
	InputFileName:        "inputFileName",
	OutputFileName:       "outputFileName",
	HasState:             "hasState",
	StateFileName:        "stateFileName",
	IsTransferable:       "isTransferable",
	InputBatches:         "inputBatches",
	InputBatch:           "inputBatch",
	InputBatchType:       "inputBatchType",
	DistributorName:      "distributorName",
	SourceChannels:       "sourceChannels",
	ChannelName:          "channelName",
	InputBatchChannels:   "inputBatchChannels",
	OutputBatches:        "outputBatches",
	OutputBatch:          "outputBatch",
	OutputBatchType:      "outputBatchType",
	CollectorName:        "collectorName",
	OutputChannels:       "outputChannels",
	OutputChannel:        "outputChannel",
	ChannelConvertedName: "channelConvertedName",
	ReceiverName:         "receiverName",
	IsStarting:           "isStarting",
	IsFinishing:          "isFinishing",
}

// String returns the tag name as written in a workflow document.
func (t TagType) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "tag(?)"
	}
	if t == TagUndefined {
		return "undefined"
	}
	return tagNames[t]
}

// AllTagTypes returns every defined tag type in declaration order.
func AllTagTypes() []TagType {
	types := make([]TagType, 0, len(tagNames)-1)
	for t := Workflow; int(t) < len(tagNames); t++ {
		types = append(types, t)
	}
	return types
}
