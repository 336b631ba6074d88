package lesson

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRejected is returned (wrapped with the canned reason) when a submission
// fails the moderation gate. The lesson is still persisted.
var ErrRejected = errors.New("content rejected")

type (
	// Repository is the durable content-item list port. The list is stored
	// unscoped; owner filtering happens at read time.
	Repository interface {
		CreateLesson(l Lesson) (Lesson, error)
		QueryLessonsByTeacher(teacherID string) ([]Lesson, error)
		QueryAllLessons() ([]Lesson, error)
	}

	Service interface {
		Submit(teacherID string, nl NewLesson) (Lesson, error)
		Query(teacherID string) ([]Lesson, error)
		Recent(teacherID string, n int) ([]Lesson, error)
		Stats(teacherID string) (Stats, error)
	}

	service struct {
		repo      Repository
		moderator Moderator
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, moderator Moderator) Service {
	return &service{
		repo:      repo,
		moderator: moderator,
	}
}

// Submit runs the draft through moderation and records the outcome.
// Rejected submissions are recorded too; the returned error then wraps
// ErrRejected and carries the canned reason.
func (svc *service) Submit(teacherID string, nl NewLesson) (Lesson, error) {
	verdict := svc.moderator.Check(nl.Files)

	l := Lesson{
		ID:           uuid.New().String(),
		TeacherID:    teacherID,
		Subject:      nl.Subject,
		ContentTypes: nl.ContentTypes,
		Files:        nl.Files,
		Description:  nl.Description,
		Status:       StatusVerified,
		CreatedAt:    time.Now().UTC(),
	}
	if !verdict.Valid {
		l.Status = StatusRejected
		l.RejectionReason = verdict.Reason
	}

	l, err := svc.repo.CreateLesson(l)
	if err != nil {
		return Lesson{}, errors.Wrap(err, "creating lesson")
	}
	if !verdict.Valid {
		return l, errors.Wrap(ErrRejected, verdict.Reason)
	}
	return l, nil
}

// Query returns the teacher's lessons, newest first.
func (svc *service) Query(teacherID string) ([]Lesson, error) {
	lessons, err := svc.repo.QueryLessonsByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].CreatedAt.After(lessons[j].CreatedAt)
	})
	return lessons, nil
}

func (svc *service) Recent(teacherID string, n int) ([]Lesson, error) {
	lessons, err := svc.Query(teacherID)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(lessons) > n {
		lessons = lessons[:n]
	}
	return lessons, nil
}

func (svc *service) Stats(teacherID string) (Stats, error) {
	lessons, err := svc.repo.QueryLessonsByTeacher(teacherID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(lessons)}
	for _, l := range lessons {
		switch l.Status {
		case StatusVerified:
			stats.Verified++
		case StatusRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
	}
	return stats, nil
}
