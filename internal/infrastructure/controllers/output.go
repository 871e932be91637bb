package controllers

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

const noSelection = -1

// printResult reports an operation the way the panel does: one INFO or ERROR line.
func printResult(out io.Writer, result entities.OperationResult) {
	if result.OK {
		_, _ = fmt.Fprintf(out, "[INFO] %s\n", result.Message)
		return
	}
	_, _ = fmt.Fprintf(out, "[ERROR] %s\n", result.Message)
}

// printInventory renders the records as an indexed table, marking the
// selected row with '>'. Pass noSelection to mark none.
func printInventory(out io.Writer, records []entities.PackageRecord, selected int) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, "No packages installed.")
		return
	}

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(writer, "\t#\tPACKAGE\tVERSION")
	for i, record := range records {
		marker := " "
		if i == selected {
			marker = ">"
		}
		_, _ = fmt.Fprintf(writer, "%s\t%d\t%s\t%s\n", marker, i, record.Name, record.Version)
	}
	_ = writer.Flush()
}
