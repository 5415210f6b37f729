package commands

import (
	"fmt"
	"sort"
	"strings"

	"gradepoint-backend/cmd/gradepoint-cli/utils"
	"gradepoint-backend/lib/scrapers/infinitecampus"
	"gradepoint-backend/lib/serviceutil"

	"github.com/antzucaro/matchr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var districtsState *string

func init() {
	districtsState = districtsCmd.Flags().StringP("state", "s", "GA", "Two-letter state code to search within.")
	rootCmd.AddCommand(districtsCmd)
}

var districtsCmd = &cobra.Command{
	Use:   "districts <query> [--state XX]",
	Short: "Searches the public district directory and ranks matches by name similarity.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := args[0]

		client, err := infinitecampus.NewClient(infinitecampus.ClientOptions{})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}

		districts, err := client.SearchDistricts(cmd.Context(), query, *districtsState)
		if err != nil {
			serviceutil.Fatal("failed to search districts", err)
		}

		type ranked struct {
			district   infinitecampus.District
			similarity float64
		}
		rankedDistricts := make([]ranked, len(districts))
		for i, d := range districts {
			rankedDistricts[i] = ranked{
				district: d,
				similarity: matchr.JaroWinkler(
					strings.ToLower(query),
					strings.ToLower(d.Name),
					false,
				),
			}
		}
		sort.SliceStable(rankedDistricts, func(i, j int) bool {
			return rankedDistricts[i].similarity > rankedDistricts[j].similarity
		})

		t := utils.NewTable()
		t.AppendHeader(table.Row{"District", "ID", "App Name", "Base URL", "Similarity"})
		for _, r := range rankedDistricts {
			t.AppendRow(table.Row{
				r.district.Name,
				r.district.ID,
				r.district.AppName,
				r.district.BaseUrl,
				fmt.Sprintf("%.2f", r.similarity),
			})
		}
		t.Render()
	},
}
