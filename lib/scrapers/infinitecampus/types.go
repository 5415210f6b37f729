package infinitecampus

import "slices"

// District is an administrative organization running one Infinite
// Campus portal instance. Resolved once from the public directory and
// immutable afterwards.
type District struct {
	ID              int64  `json:"id"`
	Name            string `json:"district_name"`
	AppName         string `json:"district_app_name"`
	BaseUrl         string `json:"district_baseurl"`
	Code            string `json:"district_code"`
	StateCode       string `json:"state_code"`
	StaffLoginUrl   string `json:"staff_login_url"`
	StudentLoginUrl string `json:"student_login_url"`
	ParentLoginUrl  string `json:"parent_login_url"`
}

type Grade struct {
	Score        string
	Percent      float64
	TotalPoints  float64
	PointsEarned float64
}

func (g Grade) empty() bool {
	return g.Score == "" && g.Percent == 0 && g.TotalPoints == 0 && g.PointsEarned == 0
}

// Placement is the scheduled meeting period for a course within a term.
type Placement struct {
	PeriodName string
	PeriodSeq  int
	StartTime  string
	EndTime    string
}

type Course struct {
	ID           string
	Name         string
	CourseNumber string
	Teacher      string
	RoomName     string
	Grade        Grade
	// nil unless placements were requested and the roster document
	// contained a matching section
	Placement *Placement
	Comments  string
}

// Term is a subdivision of the school year (quarter, semester,
// trimester...) containing courses. Terms come back from FetchTerms in
// document order, Seq is the intended sort key.
type Term struct {
	Name      string
	Seq       int
	StartDate string
	EndDate   string
	Courses   []Course
}

// sorts terms chronologically in place
func SortTermsBySeq(terms []Term) {
	slices.SortStableFunc(terms, func(a, b Term) int {
		return a.Seq - b.Seq
	})
}

// wire shapes of the portal documents

type gradingTask struct {
	TaskName             string  `json:"taskName"`
	Score                string  `json:"score"`
	ProgressScore        string  `json:"progressScore"`
	Percent              float64 `json:"percent"`
	ProgressPercent      float64 `json:"progressPercent"`
	TotalPoints          float64 `json:"totalPoints"`
	ProgressTotalPoints  float64 `json:"progressTotalPoints"`
	PointsEarned         float64 `json:"pointsEarned"`
	ProgressPointsEarned float64 `json:"progressPointsEarned"`
	Comments             string  `json:"comments"`
}

type rawCourse struct {
	ID             string        `json:"_id"`
	CourseName     string        `json:"courseName"`
	CourseNumber   string        `json:"courseNumber"`
	RoomName       string        `json:"roomName"`
	TeacherDisplay string        `json:"teacherDisplay"`
	GradingTasks   []gradingTask `json:"gradingTasks"`
}

type rawTerm struct {
	TermName  string      `json:"termName"`
	TermSeq   int         `json:"termSeq"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Courses   []rawCourse `json:"courses"`
}

type rawSchool struct {
	DisplayName string      `json:"displayName"`
	SchoolID    int64       `json:"schoolID"`
	Terms       []rawTerm   `json:"terms"`
	Courses     []rawCourse `json:"courses"`
}

type rawPlacement struct {
	PeriodName string `json:"periodName"`
	PeriodSeq  int    `json:"periodSeq"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

type rawSection struct {
	ID         string         `json:"_id"`
	Placements []rawPlacement `json:"sectionPlacements"`
}
