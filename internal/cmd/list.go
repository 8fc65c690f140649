package cmd

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available algorithms",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var listFamily string

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFamily, "family", "", "Only list algorithms of this family (search, sorting, graphs, dynamic, backtracking)")
}

func runList(cmd *cobra.Command, args []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Title", "Family", "View", "Description"})

	count := 0
	for _, info := range catalog.Default().All() {
		if listFamily != "" && string(info.Family) != listFamily {
			continue
		}
		t.AppendRow(table.Row{info.Name, info.Title, info.Family, info.Shape, info.Description})
		count++
	}
	t.AppendFooter(table.Row{"", "", "", "Total", count})
	t.Render()
	return nil
}
