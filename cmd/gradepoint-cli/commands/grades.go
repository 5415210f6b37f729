package commands

import (
	"fmt"
	"log/slog"

	"gradepoint-backend/cmd/gradepoint-cli/utils"
	"gradepoint-backend/lib/configutil"
	"gradepoint-backend/lib/scrapers/infinitecampus"
	"gradepoint-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	District string `json:"district"`
	State    string `json:"state"`
	Username string `json:"username"`
	Password string `json:"password"`
}

var gradesSchool *int64
var gradesPlacements *bool
var gradesFirstTask *bool

func init() {
	gradesSchool = gradesCmd.Flags().Int64("school", 0, "Numeric school id when enrolled in several schools.")
	gradesPlacements = gradesCmd.Flags().Bool("placements", false, "Also fetch the roster and show period placements.")
	gradesFirstTask = gradesCmd.Flags().Bool("first-task", false, "Take the first grading task instead of the one named Final Grade.")
	rootCmd.AddCommand(gradesCmd)
}

var gradesCmd = &cobra.Command{
	Use:   "grades [--school <id>] [--placements] [--first-task]",
	Short: "Logs into the portal from config.json5 and prints per-term grades.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		strategy := infinitecampus.TaskNamedFinalGrade
		if *gradesFirstTask {
			strategy = infinitecampus.FirstTask
		}
		client, err := infinitecampus.NewClient(infinitecampus.ClientOptions{
			TaskStrategy: strategy,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}

		ctx := cmd.Context()

		district, err := client.ResolveDistrict(ctx, cfg.District, cfg.State)
		if err != nil {
			serviceutil.Fatal("failed to resolve district", err)
		}
		slog.Info("resolved district", "name", district.Name, "base_url", district.BaseUrl)

		err = client.Login(ctx, cfg.Username, cfg.Password)
		if err != nil {
			serviceutil.Fatal("failed to login", err)
		}

		terms, err := client.FetchTerms(ctx, infinitecampus.FetchTermsOptions{
			SchoolID:          *gradesSchool,
			IncludePlacements: *gradesPlacements,
		})
		if err != nil {
			serviceutil.Fatal("failed to fetch terms", err)
		}
		infinitecampus.SortTermsBySeq(terms)

		for _, term := range terms {
			fmt.Printf("\n%s (%s - %s)\n", term.Name, term.StartDate, term.EndDate)

			t := utils.NewTable()
			header := table.Row{"Course", "Teacher", "Room", "Score", "Percent", "Points"}
			if *gradesPlacements {
				header = append(header, "Period")
			}
			t.AppendHeader(header)

			for _, course := range term.Courses {
				row := table.Row{
					course.Name,
					course.Teacher,
					course.RoomName,
					course.Grade.Score,
					fmt.Sprintf("%.2f", course.Grade.Percent),
					fmt.Sprintf("%.0f/%.0f", course.Grade.PointsEarned, course.Grade.TotalPoints),
				}
				if *gradesPlacements {
					period := ""
					if course.Placement != nil {
						period = fmt.Sprintf(
							"%s (%s - %s)",
							course.Placement.PeriodName,
							course.Placement.StartTime,
							course.Placement.EndTime,
						)
					}
					row = append(row, period)
				}
				t.AppendRow(row)
			}
			t.Render()
		}
	},
}
