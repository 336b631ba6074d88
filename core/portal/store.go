// Package portal implements the session/content store behind the teacher
// portal UI: it mediates registration, login, logout and content submission,
// and scopes every read to the active session.
package portal

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/vruksha/portal/core/lesson"
	"github.com/vruksha/portal/core/teacher"
)

// ErrNotAuthenticated is returned by session-scoped operations when no
// session is active.
var ErrNotAuthenticated = errors.New("not authenticated")

type (
	// SessionRepository is the durable "current session" record port.
	// GetSession returns teacher.ErrNotFound when no record exists.
	SessionRepository interface {
		GetSession() (teacher.Teacher, error)
		SaveSession(t teacher.Teacher) error
		ClearSession() error
	}

	// Store holds the signed-in teacher in memory, mirrored durably through
	// the SessionRepository. A session exists iff the durable record does.
	Store struct {
		teacherSvc teacher.Service
		lessonSvc  lesson.Service
		sessions   SessionRepository

		mu      sync.RWMutex
		current *teacher.Teacher
	}
)

// NewStore initializes the store: a durable session record, if present, is
// loaded and marks the session active. Absent durable state means logged out,
// never an error.
func NewStore(teacherSvc teacher.Service, lessonSvc lesson.Service, sessions SessionRepository) (*Store, error) {
	s := &Store{
		teacherSvc: teacherSvc,
		lessonSvc:  lessonSvc,
		sessions:   sessions,
	}

	t, err := sessions.GetSession()
	switch errors.Cause(err) {
	case nil:
		t = t.WithoutPassword()
		s.current = &t
	case teacher.ErrNotFound:
		// no session
	default:
		return nil, errors.Wrap(err, "loading session")
	}
	return s, nil
}

// TeacherSvc exposes the account service for payload validation.
func (s *Store) TeacherSvc() teacher.Service {
	return s.teacherSvc
}

// Register creates the account without establishing a session.
func (s *Store) Register(nt teacher.NewTeacher) (teacher.Teacher, error) {
	return s.teacherSvc.Register(nt)
}

// Login establishes and persists the session on success; on failure the
// session state is untouched.
func (s *Store) Login(email, password string) (teacher.Teacher, error) {
	t, err := s.teacherSvc.Authenticate(email, password)
	if err != nil {
		return teacher.Teacher{}, err
	}

	t = t.WithoutPassword()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sessions.SaveSession(t); err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "persisting session")
	}
	s.current = &t
	return t, nil
}

// Logout clears the session unconditionally; calling it when no session
// exists is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.ClearSession(); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	s.current = nil
	return nil
}

// Current returns the active session's teacher view (never a password).
func (s *Store) Current() (teacher.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return teacher.Teacher{}, false
	}
	return *s.current, true
}

// Submit runs the draft through moderation under the active teacher.
// Rejected submissions are still recorded; the error then wraps
// lesson.ErrRejected with the canned reason.
func (s *Store) Submit(nl lesson.NewLesson) (lesson.Lesson, error) {
	t, ok := s.Current()
	if !ok {
		return lesson.Lesson{}, ErrNotAuthenticated
	}
	return s.lessonSvc.Submit(t.ID, nl)
}

// Lessons returns only the active teacher's items, newest first.
func (s *Store) Lessons() ([]lesson.Lesson, error) {
	t, ok := s.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return s.lessonSvc.Query(t.ID)
}

// Recent returns the active teacher's n most recent items.
func (s *Store) Recent(n int) ([]lesson.Lesson, error) {
	t, ok := s.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return s.lessonSvc.Recent(t.ID, n)
}

// Stats aggregates the active teacher's items by status.
func (s *Store) Stats() (lesson.Stats, error) {
	t, ok := s.Current()
	if !ok {
		return lesson.Stats{}, ErrNotAuthenticated
	}
	return s.lessonSvc.Stats(t.ID)
}
