package commands

import (
	"gradepoint-backend/cmd/gradepoint-cli/utils"
	"gradepoint-backend/services/gpa"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	gpaCmd.AddCommand(gpaCatalogCmd)
}

var gpaCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists the known course names and whether they count as weighted.",
	Run: func(cmd *cobra.Command, args []string) {
		t := utils.NewTable()
		t.AppendHeader(table.Row{"Course", "Weighted"})
		for _, name := range gpa.Catalog {
			t.AppendRow(table.Row{name, gpa.IsWeighted(name)})
		}
		t.Render()
	},
}
