package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/core/lesson"
	"github.com/vruksha/portal/core/teacher"
)

// NewConfig returns a test Config rooted in a temp dir.
func NewConfig(t *testing.T) *core.Config {
	t.Helper()
	conf := core.NewConfig()
	conf.Debug = false
	conf.TestMode = true
	conf.Storage.Dir = t.TempDir()
	return conf
}

func CreateTeacher(
	t *testing.T,
	repo teacher.Repository,
	name, email, phone, orgCode, pwd string,
	createdAt ...time.Time,
) teacher.Teacher {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	tchr := teacher.Teacher{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            email,
		Phone:            phone,
		OrganizationCode: orgCode,
		Password:         pwd,
		CreatedAt:        tstamp,
	}
	tchr, err := repo.CreateTeacher(tchr)
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return tchr
}

func CreateLesson(
	t *testing.T,
	repo lesson.Repository,
	teacherID, subject, status string,
	createdAt ...time.Time,
) lesson.Lesson {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	l := lesson.Lesson{
		ID:           uuid.New().String(),
		TeacherID:    teacherID,
		Subject:      subject,
		ContentTypes: []string{"text"},
		Files:        []lesson.File{{Type: "text", Name: subject + ".txt", URL: "blob:" + subject, Size: 1024}},
		Status:       status,
		CreatedAt:    tstamp,
	}
	if status == lesson.StatusRejected {
		l.RejectionReason = lesson.RejectionReasons[0]
	}
	l, err := repo.CreateLesson(l)
	if err != nil {
		t.Fatalf("CreateLesson() failed: %v", err)
	}
	return l
}

// NewDraft returns a minimal valid submission draft.
func NewDraft(subject string) lesson.NewLesson {
	return lesson.NewLesson{
		Subject:      subject,
		ContentTypes: []string{"text"},
		Files:        []lesson.File{{Type: "text", Name: subject + ".txt", URL: "blob:" + subject, Size: 1024}},
		Description:  "notes on " + subject,
	}
}

// JSONDiff renders a unified diff of two JSON payloads for test failures.
func JSONDiff(t *testing.T, got, want []byte) string {
	t.Helper()

	var gotBuf, wantBuf interface{}
	if err := json.Unmarshal(got, &gotBuf); err != nil {
		t.Fatalf("JSONDiff() failed: %v", err)
	}
	if err := json.Unmarshal(want, &wantBuf); err != nil {
		t.Fatalf("JSONDiff() failed: %v", err)
	}
	gotPretty, _ := json.MarshalIndent(gotBuf, "", "  ")
	wantPretty, _ := json.MarshalIndent(wantBuf, "", "  ")

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(wantPretty)),
		B:        difflib.SplitLines(string(gotPretty)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("JSONDiff() failed: %v", err)
	}
	return diff
}
