package extract

import (
	"github.com/vk/wrapperflow/internal/grammar"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/tagtree"
)

// Module converts a module tag. The id is left undefined; Workflow assigns it.
func Module(n *tagtree.Node, names Names) (model.ModuleInfo, error) {
	var info model.ModuleInfo
	var err error

	if info.Name, err = ModuleName(n); err != nil {
		return info, err
	}

	execNode, err := required(n, grammar.ExecutionType)
	if err != nil {
		return info, err
	}
	if info.ExecutionType, err = ExecutionType(execNode); err != nil {
		return info, err
	}

	transportNode, err := required(n, grammar.TransportType)
	if err != nil {
		return info, err
	}
	if info.TransportType, err = TransportType(transportNode); err != nil {
		return info, err
	}

	pathNode, err := required(n, grammar.ExecutablePath)
	if err != nil {
		return info, err
	}
	if info.ExecutablePath, err = NonEmptyString(pathNode); err != nil {
		return info, err
	}

	info.StopCommandLine = optionalString(n, grammar.StopCommandLine)
	info.InputFileName = optionalString(n, grammar.InputFileName)
	info.OutputFileName = optionalString(n, grammar.OutputFileName)
	info.StateFileName = optionalString(n, grammar.StateFileName)

	flags := []struct {
		tag grammar.TagType
		dst *bool
	}{
		{grammar.HasState, &info.HasState},
		{grammar.IsTransferable, &info.IsTransferable},
		{grammar.IsStarting, &info.IsStarting},
		{grammar.IsFinishing, &info.IsFinishing},
	}
	for _, f := range flags {
		if *f.dst, err = optionalBool(n, f.tag); err != nil {
			return info, err
		}
	}

	if c, ok := n.Child(grammar.StartCommandLineArgs); ok {
		if info.StartCommandLineArgs, err = Sequence(c, stringElem); err != nil {
			return info, err
		}
	}
	if c, ok := n.Child(grammar.ModuleParameters); ok {
		if info.Parameters, err = Sequence(c, parameter); err != nil {
			return info, err
		}
	}
	if c, ok := n.Child(grammar.EnvironmentVariables); ok {
		if info.EnvironmentVariables, err = Mapping(c, Pair); err != nil {
			return info, err
		}
	}
	if c, ok := n.Child(grammar.InputBatches); ok {
		info.InputBatches, err = Sequence(c, func(b *tagtree.Node) (model.InputBatchInfo, error) {
			return InputBatch(b, names)
		})
		if err != nil {
			return info, err
		}
	}
	if c, ok := n.Child(grammar.OutputBatches); ok {
		info.OutputBatches, err = Sequence(c, func(b *tagtree.Node) (model.OutputBatchInfo, error) {
			return OutputBatch(b, names)
		})
		if err != nil {
			return info, err
		}
	}
	return info, nil
}

// ModuleName reads the mandatory, non-empty name of a module tag.
func ModuleName(n *tagtree.Node) (string, error) {
	nameNode, err := required(n, grammar.Name)
	if err != nil {
		return "", err
	}
	return NonEmptyString(nameNode)
}

func optionalString(parent *tagtree.Node, t grammar.TagType) string {
	if n, ok := parent.Child(t); ok {
		return String(n)
	}
	return ""
}

func optionalBool(parent *tagtree.Node, t grammar.TagType) (bool, error) {
	if n, ok := parent.Child(t); ok {
		return Bool(n)
	}
	return false, nil
}

func stringElem(n *tagtree.Node) (string, error) {
	return String(n), nil
}

func parameter(n *tagtree.Node) (model.Parameter, error) {
	name, value, err := Pair(n)
	if err != nil {
		return model.Parameter{}, err
	}
	return model.Parameter{Name: name, Value: value}, nil
}
