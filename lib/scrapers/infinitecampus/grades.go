package infinitecampus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
)

type FetchTermsOptions struct {
	// selects the enrolled school by its numeric id when the account
	// spans several schools, 0 defaults to the first school in the
	// grades document
	SchoolID int64
	// also fetch the roster document and attach period placements to
	// each course
	IncludePlacements bool
}

// FetchTerms retrieves the grades document and normalizes it into a
// flat list of terms and graded courses. Terms and courses keep
// document order, use SortTermsBySeq for chronological order.
func (c *Client) FetchTerms(ctx context.Context, opts FetchTermsOptions) ([]Term, error) {
	if !c.authenticated || c.district == nil {
		return nil, &PreconditionError{Required: "authenticated session, call Login first"}
	}

	ctx, span := tracer.Start(ctx, "FetchTerms")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.district.BaseUrl + "resources/portal/grades")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch grades document")
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, &UpstreamError{Status: res.StatusCode(), Body: res.String()}
	}

	var schools []rawSchool
	err = json.Unmarshal(res.Body(), &schools)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse grades document")
		return nil, &UpstreamError{Status: res.StatusCode(), Body: res.String(), cause: err}
	}

	school, err := selectSchool(ctx, schools, opts.SchoolID)
	if err != nil {
		return nil, err
	}

	var placements map[string]Placement
	if opts.IncludePlacements {
		placements, err = c.fetchPlacements(ctx)
		if err != nil {
			return nil, err
		}
	}

	terms := make([]Term, 0, len(school.Terms))
	for _, rt := range school.Terms {
		term := Term{
			Name:      rt.TermName,
			Seq:       rt.TermSeq,
			StartDate: rt.StartDate,
			EndDate:   rt.EndDate,
		}
		for _, rc := range rt.Courses {
			course, ok := resolveCourse(rc, c.taskStrategy)
			if !ok {
				continue
			}
			if placement, ok := placements[course.ID]; ok {
				course.Placement = &placement
			}
			term.Courses = append(term.Courses, course)
		}
		terms = append(terms, term)
	}

	return terms, nil
}

func selectSchool(ctx context.Context, schools []rawSchool, schoolID int64) (rawSchool, error) {
	if len(schools) == 0 {
		return rawSchool{}, &UpstreamError{Status: 200, Body: "grades document contained no schools"}
	}

	if schoolID == 0 {
		if len(schools) > 1 {
			alternatives := make([]string, len(schools))
			for i, s := range schools {
				alternatives[i] = fmt.Sprintf("%s (id %d)", s.DisplayName, s.SchoolID)
			}
			slog.WarnContext(
				ctx, "enrolled in multiple schools, defaulting to the first",
				"chosen", schools[0].DisplayName,
				"alternatives", alternatives,
			)
		}
		return schools[0], nil
	}

	for _, s := range schools {
		if s.SchoolID == schoolID {
			return s, nil
		}
	}
	return rawSchool{}, fmt.Errorf("%w: id %d", ErrSchoolNotFound, schoolID)
}

func selectGradingTask(tasks []gradingTask, strategy TaskStrategy) (gradingTask, bool) {
	switch strategy {
	case FirstTask:
		if len(tasks) == 0 {
			return gradingTask{}, false
		}
		return tasks[0], true
	default:
		for _, t := range tasks {
			if t.TaskName == "Final Grade" {
				return t, true
			}
		}
		return gradingTask{}, false
	}
}

// resolveCourse applies the final-grade selection and filtering rules.
// A false return means the course carries no resolvable grade and is
// dropped, it is never an error.
func resolveCourse(rc rawCourse, strategy TaskStrategy) (Course, bool) {
	task, ok := selectGradingTask(rc.GradingTasks, strategy)
	if !ok {
		return Course{}, false
	}
	// "CR" is a credit-only placeholder for ungraded participation
	// courses
	if task.Score == "CR" {
		return Course{}, false
	}

	// mid-term in-progress values override the finalized snapshot
	grade := Grade{
		Score:        preferString(task.ProgressScore, task.Score),
		Percent:      preferFloat(task.ProgressPercent, task.Percent),
		TotalPoints:  preferFloat(task.ProgressTotalPoints, task.TotalPoints),
		PointsEarned: preferFloat(task.ProgressPointsEarned, task.PointsEarned),
	}
	if grade.empty() {
		return Course{}, false
	}

	return Course{
		ID:           rc.ID,
		Name:         rc.CourseName,
		CourseNumber: rc.CourseNumber,
		Teacher:      rc.TeacherDisplay,
		RoomName:     rc.RoomName,
		Grade:        grade,
		Comments:     task.Comments,
	}, true
}

func preferString(progress, finalized string) string {
	if progress != "" {
		return progress
	}
	return finalized
}

func preferFloat(progress, finalized float64) float64 {
	if progress != 0 {
		return progress
	}
	return finalized
}
