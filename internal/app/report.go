package app

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/vk/wrapperflow/internal/model"
)

type jsonReport struct {
	Source      string             `json:"source"`
	Modules     []model.ModuleInfo `json:"modules"`
	Unreachable []string           `json:"unreachable,omitempty"`
	Loop        []string           `json:"loop,omitempty"`
}

func (a *App) writeReport(res *Result) error {
	if a.config.Output == OutputJSON {
		return a.writeJSON(res)
	}
	return a.writeText(res)
}

func (a *App) writeJSON(res *Result) error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Source:      res.Path,
		Modules:     res.Workflow.Modules,
		Unreachable: names(res.Workflow, res.Unreachable),
		Loop:        names(res.Workflow, res.Loop),
	})
}

func (a *App) writeText(res *Result) error {
	wf := res.Workflow
	fmt.Fprintf(a.outW, "Workflow %s: %d modules\n\n", res.Path, len(wf.Modules))

	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEXECUTION\tTRANSPORT\tEXECUTABLE\tINPUTS\tOUTPUTS\tFLAGS")
	for i := range wf.Modules {
		m := &wf.Modules[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			m.ID.WorkflowID, m.Name, m.ExecutionType, m.TransportType, m.ExecutablePath,
			len(m.InputBatches), len(m.OutputBatches), flags(m))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var channels []string
	for i := range wf.Modules {
		m := &wf.Modules[i]
		for _, batch := range m.OutputBatches {
			for _, ch := range batch.Channels {
				channels = append(channels, fmt.Sprintf("  %s.%s -> %s.%s", m.Name, ch.Name, wf.NameOf(ch.Receiver), ch.ConvertedName))
			}
		}
	}
	if len(channels) > 0 {
		fmt.Fprintf(a.outW, "\nChannels:\n%s\n", strings.Join(channels, "\n"))
	}
	if len(res.Unreachable) > 0 {
		fmt.Fprintf(a.outW, "\nUnreachable: %s\n", strings.Join(names(wf, res.Unreachable), ", "))
	}
	if len(res.Loop) > 0 {
		fmt.Fprintf(a.outW, "\nLoop: %s\n", strings.Join(names(wf, res.Loop), " -> "))
	}
	return nil
}

func flags(m *model.ModuleInfo) string {
	var out []string
	if m.IsStarting {
		out = append(out, "starting")
	}
	if m.IsFinishing {
		out = append(out, "finishing")
	}
	if m.HasState {
		out = append(out, "stateful")
	}
	if m.IsTransferable {
		out = append(out, "transferable")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}
