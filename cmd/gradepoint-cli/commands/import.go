package commands

import (
	"fmt"
	"log/slog"
	"time"

	"gradepoint-backend/cmd/gradepoint-cli/utils"
	"gradepoint-backend/lib/configutil"
	"gradepoint-backend/lib/scrapers/infinitecampus"
	"gradepoint-backend/lib/serviceutil"
	"gradepoint-backend/lib/timezone"
	"gradepoint-backend/services/gpa"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var importSchool *int64

func init() {
	importSchool = gpaImportCmd.Flags().Int64("school", 0, "Numeric school id when enrolled in several schools.")
	gpaCmd.AddCommand(gpaImportCmd)
}

// the term whose date range contains today, in the district's
// timezone. Falls back to the most recent term, grades for the school
// year stay visible over the summer.
func currentTerm(sorted []infinitecampus.Term) infinitecampus.Term {
	now := timezone.Now()
	for _, term := range sorted {
		start, err := time.ParseInLocation("2006-01-02", term.StartDate, timezone.Location)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation("2006-01-02", term.EndDate, timezone.Location)
		if err != nil {
			continue
		}
		if !now.Before(start) && now.Before(end.AddDate(0, 0, 1)) {
			return term
		}
	}
	return sorted[len(sorted)-1]
}

var gpaImportCmd = &cobra.Command{
	Use:   "import [--school <id>]",
	Short: "Replaces the selected semester's subjects with courses scraped from the portal.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		client, err := infinitecampus.NewClient(infinitecampus.ClientOptions{})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}

		ctx := cmd.Context()

		_, err = client.ResolveDistrict(ctx, cfg.District, cfg.State)
		if err != nil {
			serviceutil.Fatal("failed to resolve district", err)
		}
		err = client.Login(ctx, cfg.Username, cfg.Password)
		if err != nil {
			serviceutil.Fatal("failed to login", err)
		}

		terms, err := client.FetchTerms(ctx, infinitecampus.FetchTermsOptions{
			SchoolID: *importSchool,
		})
		if err != nil {
			serviceutil.Fatal("failed to fetch terms", err)
		}
		if len(terms) == 0 {
			serviceutil.Fatal("portal returned no terms", fmt.Errorf("nothing to import"))
		}

		infinitecampus.SortTermsBySeq(terms)
		current := currentTerm(terms)
		slog.Info("importing term", "term", current.Name, "courses", len(current.Courses))

		semester := gpa.Semester(*gpaSemester)
		if semester == gpa.BothSemesters {
			semester = gpa.Semester1
		}

		service := openService(ctx)
		service.SetSemester(semester)
		err = service.Clear(ctx)
		if err != nil {
			serviceutil.Fatal("failed to clear subjects", err)
		}
		for _, course := range current.Courses {
			_, err = service.Add(ctx, course.Name, course.Grade.Percent, semester)
			if err != nil {
				serviceutil.Fatal("failed to add subject", err)
			}
		}

		renderSubjects(service)

		summary := service.Summary()
		t := utils.NewTable()
		t.AppendHeader(table.Row{"Weighted GPA", "Unweighted GPA"})
		t.AppendRow(table.Row{
			fmt.Sprintf("%.2f", summary.WeightedGPA),
			fmt.Sprintf("%.2f", summary.UnweightedGPA),
		})
		t.Render()
	},
}
