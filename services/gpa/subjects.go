package gpa

import (
	"regexp"
	"strings"
)

type Semester int

const (
	Semester1 Semester = 1
	Semester2 Semester = 2
	// the combined view, unions both semester buckets
	BothSemesters Semester = 3
)

type Subject struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Grade    float64  `json:"grade"`
	Weighted bool     `json:"weighted"`
	Semester Semester `json:"semester"`
}

var weightedIndicators = regexp.MustCompile(`(?i)advanced|ap|honors|ib`)

// IsWeighted decides whether a subject name earns the rigor bonus.
// Decided once when the subject is created, renames don't change it.
func IsWeighted(name string) bool {
	return weightedIndicators.MatchString(name) ||
		strings.HasSuffix(name, " H") ||
		strings.HasSuffix(name, " h")
}

// GradeColor names the display color for a numeric grade.
func GradeColor(grade float64) string {
	switch {
	case grade >= 90:
		return "green"
	case grade >= 80:
		return "yellowgreen"
	case grade >= 70:
		return "orange"
	default:
		return "red"
	}
}

// an example schedule shown when the store is empty
func DefaultSubjects() []Subject {
	names := []struct {
		name  string
		grade float64
	}{
		{"AP Calculus", 98},
		{"Spanish 3", 98},
		{"AP Computer Science A", 100},
		{"10th Lit", 94},
		{"AP Lang", 80},
	}
	subjects := make([]Subject, len(names))
	for i, n := range names {
		subjects[i] = Subject{
			ID:       int64(i),
			Name:     n.name,
			Grade:    n.grade,
			Weighted: IsWeighted(n.name),
			Semester: Semester1,
		}
	}
	return subjects
}

// Catalog is the course list offered for pickers, taken from the
// district's published course catalog.
var Catalog = []string{
	// ELA
	"9th Grade Lit/Comp",
	"9th Grade Lit/Comp Honors",
	"World Lit/Comp",
	"World Lit/Comp Honors",
	"AP Seminar",
	"11th American Lit/Comp",
	"11th American Lit/Comp Honors",
	"AP Language",
	"IB Language and Literature A",
	"British (English) Lit/Comp",
	"Advanced Composition Honors",
	"AP Literature & Composition",

	// Math
	"Algebra I",
	"Algebra I Honors",
	"Geometry",
	"Geometry Honors",
	"Algebra II",
	"Algebra II Honors",
	"Precalculus",
	"Precalculus Honors",
	"AP Calculus AB",
	"AP Calculus BC",
	"AP Statistics",
	"IB Math",

	// Science
	"Biology",
	"Biology Honors",
	"Earth Systems",
	"Physical Science",
	"Chemistry",
	"Chemistry Honors",
	"Physics",
	"Environmental Science",
	"AP Biology",
	"AP Environmental Science",
	"AP Chemistry",
	"AP Physics 1",
	"AP Physics 2",
	"AP Physics C",
	"IB Chemistry",
	"IB Physics",

	// Social Studies
	"American Government/Civics",
	"AP Government/Politics U.S.",
	"World History",
	"AP World History",
	"US History",
	"AP US History",
	"AP Macroeconomics",
	"AP Microeconomics",
	"AP Psychology",
	"AP Human Geography",
}
