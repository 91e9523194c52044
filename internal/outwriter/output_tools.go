package outwriter

import (
	"io"
	"strings"

	"github.com/huangsam/git-commit-helper/internal/contract"
	"github.com/huangsam/git-commit-helper/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeToolsTable generates and writes the human-readable tool catalog.
func writeToolsTable(w io.Writer, tools []schema.ToolSpec, maxDescWidth int, useColors bool) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Tool", "Parameters", "Description"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, t := range tools {
		name := string(t.Name)
		if useColors {
			name = contract.HeaderColor.Sprint(name)
		}
		data = append(data, []string{
			name,
			formatParams(t.Params),
			truncateText(t.Description, maxDescWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatParams renders parameters as "name?: kind" pairs; every parameter is optional.
func formatParams(params []schema.ParamSpec) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+"?: "+string(p.Kind))
	}
	return strings.Join(parts, ", ")
}
