package testutil

import (
	"fmt"
	"strings"
)

// ModuleXML renders a module element with the required children and any
// extra child elements appended.
func ModuleXML(name, execution, transport, path string, extra ...string) string {
	return fmt.Sprintf("<module><name>%s</name><executionType>%s</executionType>"+
		"<transportType>%s</transportType><executablePath>%s</executablePath>%s</module>",
		name, execution, transport, path, strings.Join(extra, ""))
}

// WorkflowXML wraps module elements into a workflow document with the given
// modules count.
func WorkflowXML(count int, modules ...string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<workflow>
<modules count="%d">
%s
</modules>
</workflow>
`, count, strings.Join(modules, "\n"))
}

// OutputBatchXML renders an outputBatches element with one batch whose
// channels are given as name, converted name, receiver triples.
func OutputBatchXML(batchType, collector string, channels ...[3]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<outputBatches count="1"><outputBatch><outputBatchType>%s</outputBatchType>`, batchType)
	if collector != "" {
		fmt.Fprintf(&sb, "<collectorName>%s</collectorName>", collector)
	}
	fmt.Fprintf(&sb, `<outputChannels count="%d">`, len(channels))
	for _, ch := range channels {
		fmt.Fprintf(&sb, "<outputChannel><channelName>%s</channelName><channelConvertedName>%s</channelConvertedName>"+
			"<receiverName>%s</receiverName></outputChannel>", ch[0], ch[1], ch[2])
	}
	sb.WriteString("</outputChannels></outputBatch></outputBatches>")
	return sb.String()
}

// InputBatchXML renders an inputBatches element with one batch.
func InputBatchXML(batchType, distributor string, sources, channels []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<inputBatches count="1"><inputBatch><inputBatchType>%s</inputBatchType>`, batchType)
	if distributor != "" {
		fmt.Fprintf(&sb, "<distributorName>%s</distributorName>", distributor)
	}
	writeChannels(&sb, "sourceChannels", sources)
	writeChannels(&sb, "inputBatchChannels", channels)
	sb.WriteString("</inputBatch></inputBatches>")
	return sb.String()
}

func writeChannels(sb *strings.Builder, tag string, names []string) {
	fmt.Fprintf(sb, `<%s count="%d">`, tag, len(names))
	for _, n := range names {
		fmt.Fprintf(sb, "<channelName>%s</channelName>", n)
	}
	fmt.Fprintf(sb, "</%s>", tag)
}
