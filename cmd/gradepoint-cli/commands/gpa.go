package commands

import (
	"context"
	"fmt"
	"strconv"

	"gradepoint-backend/cmd/gradepoint-cli/utils"
	configsqlite "gradepoint-backend/lib/configutil/sqlite"
	"gradepoint-backend/lib/serviceutil"
	"gradepoint-backend/services/gpa"
	"gradepoint-backend/services/gpa/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var gpaDb *string
var gpaSemester *int

func init() {
	gpaDb = gpaCmd.PersistentFlags().String("db", "subjects.db", "The database holding the subject list.")
	gpaSemester = gpaCmd.PersistentFlags().Int("semester", 3, "Semester selector: 1, 2 or 3 for both.")

	gpaCmd.AddCommand(gpaAddCmd)
	gpaCmd.AddCommand(gpaRemoveCmd)
	gpaCmd.AddCommand(gpaClearCmd)
	gpaCmd.AddCommand(gpaListCmd)
	gpaCmd.AddCommand(gpaSummaryCmd)
	gpaCmd.AddCommand(gpaAutosaveCmd)
	rootCmd.AddCommand(gpaCmd)
}

var gpaCmd = &cobra.Command{
	Use:   "gpa",
	Short: "Manages the local subject list and computes weighted/unweighted GPAs.",
}

func openService(ctx context.Context) *gpa.Service {
	database, err := configsqlite.Struct{File: *gpaDb}.OpenDB()
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	_, err = database.Exec(db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to apply schema", err)
	}

	service, err := gpa.NewService(ctx, gpa.NewStore(database))
	if err != nil {
		serviceutil.Fatal("failed to load subjects", err)
	}
	service.SetSemester(gpa.Semester(*gpaSemester))
	return service
}

func gradeCellColor(grade float64) text.Colors {
	switch gpa.GradeColor(grade) {
	case "green":
		return text.Colors{text.FgGreen}
	case "yellowgreen":
		return text.Colors{text.FgHiGreen}
	case "orange":
		return text.Colors{text.FgYellow}
	default:
		return text.Colors{text.FgRed}
	}
}

func renderSubjects(service *gpa.Service) {
	t := utils.NewTable()
	t.AppendHeader(table.Row{"ID", "Subject", "Grade", "Weighted", "Semester"})
	for _, subject := range service.Subjects() {
		color := gradeCellColor(subject.Grade)
		t.AppendRow(table.Row{
			subject.ID,
			subject.Name,
			color.Sprintf("%.1f", subject.Grade),
			subject.Weighted,
			int(subject.Semester),
		})
	}
	t.Render()
}

var gpaAddCmd = &cobra.Command{
	Use:   "add <name> <grade>",
	Short: "Adds a subject, the weighted flag is derived from the name.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		grade, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			serviceutil.Fatal("grade must be a number", err)
		}

		semester := gpa.Semester(*gpaSemester)
		// the combined selector is a view, new subjects go to S1
		if semester == gpa.BothSemesters {
			semester = gpa.Semester1
		}

		service := openService(cmd.Context())
		subject, err := service.Add(cmd.Context(), args[0], grade, semester)
		if err != nil {
			serviceutil.Fatal("failed to add subject", err)
		}

		fmt.Printf("added %q (id %d, weighted: %v)\n", subject.Name, subject.ID, subject.Weighted)
	},
}

var gpaRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Removes a subject by id.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			serviceutil.Fatal("id must be a number", err)
		}

		service := openService(cmd.Context())
		removed, err := service.Remove(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to remove subject", err)
		}
		if !removed {
			fmt.Printf("no subject has id %d\n", id)
			return
		}
		fmt.Printf("removed subject %d\n", id)
	},
}

var gpaClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clears the selected semester, or both with --semester 3.",
	Run: func(cmd *cobra.Command, args []string) {
		service := openService(cmd.Context())
		err := service.Clear(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to clear subjects", err)
		}
		fmt.Println("cleared")
	},
}

var gpaListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the subjects in the selected semester.",
	Run: func(cmd *cobra.Command, args []string) {
		renderSubjects(openService(cmd.Context()))
	},
}

var gpaSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Prints weighted GPA, unweighted GPA and the grade extremes.",
	Run: func(cmd *cobra.Command, args []string) {
		service := openService(cmd.Context())
		renderSubjects(service)

		summary := service.Summary()
		t := utils.NewTable()
		t.AppendHeader(table.Row{"Weighted GPA", "Unweighted GPA", "Lowest", "Highest"})
		t.AppendRow(table.Row{
			fmt.Sprintf("%.2f", summary.WeightedGPA),
			fmt.Sprintf("%.2f", summary.UnweightedGPA),
			fmt.Sprintf("%s (%.1f)", summary.Lowest.Name, summary.Lowest.Grade),
			fmt.Sprintf("%s (%.1f)", summary.Highest.Name, summary.Highest.Grade),
		})
		t.Render()
	},
}

var gpaAutosaveCmd = &cobra.Command{
	Use:   "autosave <on|off>",
	Short: "Toggles writing the subject list to the store on every change.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService(cmd.Context())
		err := service.SetAutosave(cmd.Context(), args[0] == "on")
		if err != nil {
			serviceutil.Fatal("failed to update settings", err)
		}
		fmt.Printf("autosave %s\n", args[0])
	},
}
