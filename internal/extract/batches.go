package extract

import (
	"github.com/vk/wrapperflow/internal/grammar"
	"github.com/vk/wrapperflow/internal/model"
	"github.com/vk/wrapperflow/internal/parseerr"
	"github.com/vk/wrapperflow/internal/tagtree"
)

// Names maps declared module names to their workflow ids.
type Names map[string]model.WorkflowID

// Resolve looks name up. n is the tag holding the reference and is only used
// to describe a failure.
func (names Names) Resolve(n *tagtree.Node, name string) (model.WorkflowID, error) {
	id, ok := names[name]
	if !ok {
		err := &parseerr.Error{
			Kind:   parseerr.UnresolvedReference,
			Tag:    n.Type.String(),
			Value:  name,
			Detail: "no module with this name",
			Line:   n.Pos.Line,
			Column: n.Pos.Column,
		}
		if p := n.Parent(); p != nil {
			err.Parent = p.Type.String()
		}
		return model.WorkflowIDUndefined, err
	}
	return id, nil
}

// optionalReference resolves the text of an optional name tag. An absent or
// empty tag yields the undefined id.
func (names Names) optionalReference(parent *tagtree.Node, t grammar.TagType) (model.WorkflowID, error) {
	n, ok := parent.Child(t)
	if !ok || n.Text == "" {
		return model.WorkflowIDUndefined, nil
	}
	return names.Resolve(n, n.Text)
}

// channelNames converts a sourceChannels or inputBatchChannels tag.
func channelNames(parent *tagtree.Node, t grammar.TagType) ([]string, error) {
	n, err := required(parent, t)
	if err != nil {
		return nil, err
	}
	return Sequence(n, NonEmptyString)
}

// InputBatch converts an inputBatch tag.
func InputBatch(n *tagtree.Node, names Names) (model.InputBatchInfo, error) {
	var info model.InputBatchInfo

	typeNode, err := required(n, grammar.InputBatchType)
	if err != nil {
		return info, err
	}
	if info.Type, err = InputBatchType(typeNode); err != nil {
		return info, err
	}
	if info.Source, err = names.optionalReference(n, grammar.DistributorName); err != nil {
		return info, err
	}
	if info.SourceChannels, err = channelNames(n, grammar.SourceChannels); err != nil {
		return info, err
	}
	if info.Channels, err = channelNames(n, grammar.InputBatchChannels); err != nil {
		return info, err
	}
	return info, nil
}

// OutputChannel converts an outputChannel tag. All three children are
// required and must not be empty.
func OutputChannel(n *tagtree.Node, names Names) (model.OutputChannelInfo, error) {
	var info model.OutputChannelInfo

	nameNode, err := required(n, grammar.ChannelName)
	if err != nil {
		return info, err
	}
	if info.Name, err = NonEmptyString(nameNode); err != nil {
		return info, err
	}

	convertedNode, err := required(n, grammar.ChannelConvertedName)
	if err != nil {
		return info, err
	}
	if info.ConvertedName, err = NonEmptyString(convertedNode); err != nil {
		return info, err
	}

	receiverNode, err := required(n, grammar.ReceiverName)
	if err != nil {
		return info, err
	}
	receiver, err := NonEmptyString(receiverNode)
	if err != nil {
		return info, err
	}
	if info.Receiver, err = names.Resolve(receiverNode, receiver); err != nil {
		return info, err
	}
	return info, nil
}

// OutputBatch converts an outputBatch tag.
func OutputBatch(n *tagtree.Node, names Names) (model.OutputBatchInfo, error) {
	var info model.OutputBatchInfo

	typeNode, err := required(n, grammar.OutputBatchType)
	if err != nil {
		return info, err
	}
	if info.Type, err = OutputBatchType(typeNode); err != nil {
		return info, err
	}
	if info.Receiver, err = names.optionalReference(n, grammar.CollectorName); err != nil {
		return info, err
	}

	channelsNode, err := required(n, grammar.OutputChannels)
	if err != nil {
		return info, err
	}
	info.Channels, err = Sequence(channelsNode, func(c *tagtree.Node) (model.OutputChannelInfo, error) {
		return OutputChannel(c, names)
	})
	if err != nil {
		return info, err
	}
	return info, nil
}
