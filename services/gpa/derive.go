package gpa

// flat bonus a weighted subject contributes to the weighted GPA
const weightedBonus = 7

// starting value of the "lowest" comparison, just above any real
// grade. "highest" starts at 0 instead, the asymmetry lets a missing
// grade win lowest but never highest.
const lowestStart = 102

type Extreme struct {
	Name  string
	Grade float64
}

type Summary struct {
	WeightedGPA   float64
	UnweightedGPA float64
	Lowest        Extreme
	Highest       Extreme
}

// Derive computes the summary for a subject subset in one pass.
// Missing grades count as 0 in the means, ties keep the
// first-encountered subject.
func Derive(subjects []Subject) Summary {
	lowest := Extreme{Grade: 0, Name: "None"}
	highest := Extreme{Grade: 0, Name: "None"}
	if len(subjects) == 0 {
		return Summary{Lowest: lowest, Highest: highest}
	}

	var sum float64
	var bonus float64
	lowestCmp := float64(lowestStart)

	for _, s := range subjects {
		sum += s.Grade
		if s.Weighted {
			bonus += weightedBonus
		}

		if s.Grade < lowestCmp {
			lowestCmp = s.Grade
			lowest = Extreme{Name: s.Name, Grade: s.Grade}
		}
		if s.Grade > highest.Grade {
			highest = Extreme{Name: s.Name, Grade: s.Grade}
		}
	}

	n := float64(len(subjects))
	return Summary{
		UnweightedGPA: sum / n,
		WeightedGPA:   (sum + bonus) / n,
		Lowest:        lowest,
		Highest:       highest,
	}
}
