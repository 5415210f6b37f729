package gpa

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/gpa")

// Service owns the editable subject list. Every mutation is atomic,
// persists to the store (while autosave is on) and recomputes the
// cached summary before returning.
type Service struct {
	mu       sync.Mutex
	store    Store
	autosave bool
	semester Semester
	nextID   int64
	subjects []Subject
	summary  Summary
}

func NewService(ctx context.Context, store Store) (*Service, error) {
	subjects, err := store.LoadSubjects(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := store.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		slog.InfoContext(ctx, "no saved subjects, seeding the example schedule")
		subjects = DefaultSubjects()
	}

	s := &Service{
		store:    store,
		autosave: settings.Autosave,
		semester: BothSemesters,
		subjects: subjects,
	}
	for _, subject := range subjects {
		if subject.ID >= s.nextID {
			s.nextID = subject.ID + 1
		}
	}
	s.summary = Derive(s.active())
	return s, nil
}

// the subset selected by the current semester
func (s *Service) active() []Subject {
	if s.semester == BothSemesters {
		return s.subjects
	}
	var out []Subject
	for _, subject := range s.subjects {
		if subject.Semester == s.semester {
			out = append(out, subject)
		}
	}
	return out
}

// recompute the cached summary and write through to the store, called
// with the lock held after every mutation
func (s *Service) commit(ctx context.Context) error {
	s.summary = Derive(s.active())
	if !s.autosave {
		return nil
	}
	return s.store.SaveSubjects(ctx, s.subjects)
}

func (s *Service) Add(ctx context.Context, name string, grade float64, semester Semester) (Subject, error) {
	ctx, span := tracer.Start(ctx, "Add")
	defer span.End()

	if semester != Semester1 && semester != Semester2 {
		return Subject{}, fmt.Errorf("a subject must belong to semester 1 or 2, got %d", semester)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subject := Subject{
		ID:       s.nextID,
		Name:     name,
		Grade:    grade,
		Weighted: IsWeighted(name),
		Semester: semester,
	}
	s.nextID++
	s.subjects = append(s.subjects, subject)

	return subject, s.commit(ctx)
}

// Remove deletes a subject by id from whichever bucket holds it.
// Returns false when no subject has that id.
func (s *Service) Remove(ctx context.Context, id int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "Remove")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, subject := range s.subjects {
		if subject.ID != id {
			continue
		}
		s.subjects = append(s.subjects[:i], s.subjects[i+1:]...)
		return true, s.commit(ctx)
	}
	return false, nil
}

// Clear empties the buckets covered by the current semester selector,
// the combined view clears both.
func (s *Service) Clear(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Clear")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.semester == BothSemesters {
		s.subjects = nil
	} else {
		var kept []Subject
		for _, subject := range s.subjects {
			if subject.Semester != s.semester {
				kept = append(kept, subject)
			}
		}
		s.subjects = kept
	}
	return s.commit(ctx)
}

// Replace swaps in a whole new subject list. Ids are kept, the fresh-id
// counter moves past the largest so removed ids are never reused.
func (s *Service) Replace(ctx context.Context, subjects []Subject) error {
	ctx, span := tracer.Start(ctx, "Replace")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subjects = append([]Subject(nil), subjects...)
	for _, subject := range s.subjects {
		if subject.ID >= s.nextID {
			s.nextID = subject.ID + 1
		}
	}
	return s.commit(ctx)
}

func (s *Service) SetSemester(semester Semester) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.semester = semester
	s.summary = Derive(s.active())
}

func (s *Service) Semester() Semester {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.semester
}

// SetAutosave persists the flag itself regardless of its value, only
// subject writes are gated by it.
func (s *Service) SetAutosave(ctx context.Context, autosave bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autosave = autosave
	return s.store.SaveSettings(ctx, Settings{Autosave: autosave})
}

// Subjects returns a copy of the active subset.
func (s *Service) Subjects() []Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Subject(nil), s.active()...)
}

func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}
