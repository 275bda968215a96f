package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes a workload response in the requested output format.
func FormatOutput(w io.Writer, resp *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, resp)
	case "yaml":
		return formatYAML(w, resp)
	case "table":
		return formatTable(w, resp)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatSchedule writes a growth schedule in the requested output format.
func FormatSchedule(w io.Writer, events []GrowthEvent, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(events)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(events)
	case "table":
		return formatGrowthTable(w, events)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable formats a response as a table
func formatTable(w io.Writer, resp *Response) error {
	fmt.Fprintf(w, "Operations: %d (appends %d, inserts %d, erases %d, skipped %d)\n",
		resp.Operations, resp.Appends, resp.Inserts, resp.Erases, resp.SkippedOps)
	fmt.Fprintf(w, "Final state: %d elements in capacity %d\n", resp.FinalLen, resp.FinalCap)
	fmt.Fprintf(w, "Elapsed: %v (%.0f ops/s)\n\n", resp.Elapsed, resp.OpsPerSecond)

	return formatGrowthTable(w, resp.Growths)
}

func formatGrowthTable(w io.Writer, events []GrowthEvent) error {
	if len(events) == 0 {
		fmt.Fprintln(w, "No storage growth occurred.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "OPERATION\tFROM CAP\tTO CAP\n")
	fmt.Fprintf(tw, "---------\t--------\t------\n")
	for _, ev := range events {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", ev.Operation, ev.FromCap, ev.ToCap)
	}
	return nil
}

// formatJSON formats a response as JSON
func formatJSON(w io.Writer, resp *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}

// formatYAML formats a response as YAML
func formatYAML(w io.Writer, resp *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(resp)
}
