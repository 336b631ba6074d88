package lesson

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/vruksha/portal/core"
)

// Lifecycle statuses. A Lesson's status is assigned exactly once, by the
// moderation gate at creation; it never transitions afterwards.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// ContentTypes are the declared content-type tags a submission may carry.
var ContentTypes = []string{"text", "video", "audio", "image", "pdf", "presentation"}

type (
	// File describes one uploaded file: already resolved by the caller to a
	// name, a storage reference and a byte size.
	File struct {
		Type string `json:"type" validate:"required,contenttype"`
		Name string `json:"name" validate:"required"`
		URL  string `json:"url" validate:"required"`
		Size int64  `json:"size" validate:"min=0"`
	}

	// Lesson is one submitted piece of educational material plus its
	// moderation outcome. RejectionReason is set iff Status is rejected.
	Lesson struct {
		ID              string    `json:"id"`
		TeacherID       string    `json:"teacher_id"`
		Subject         string    `json:"subject"`
		ContentTypes    []string  `json:"content_types"`
		Files           []File    `json:"files"`
		Description     string    `json:"description"`
		Status          string    `json:"status"`
		CreatedAt       time.Time `json:"created_at"` // UTC
		RejectionReason string    `json:"rejection_reason,omitempty"`
	}

	// NewLesson is a fully assembled submission draft.
	NewLesson struct {
		Subject      string   `json:"subject" validate:"required"`
		ContentTypes []string `json:"content_types" validate:"required,min=1,dive,contenttype"`
		Files        []File   `json:"files" validate:"required,min=1,dive"`
		Description  string   `json:"description"`
	}

	// Stats aggregates a teacher's submissions by status.
	Stats struct {
		Total    int `json:"total"`
		Verified int `json:"verified"`
		Pending  int `json:"pending"`
		Rejected int `json:"rejected"`
	}
)

func (nl *NewLesson) Validate(validate *validator.Validate, translator ut.Translator) error {
	nl.Subject = core.CleanString(nl.Subject)
	nl.Description = core.CleanString(nl.Description)
	return validate.Struct(nl)
}

// IsVerified reports whether the lesson passed the moderation gate.
func (l Lesson) IsVerified() bool { return l.Status == StatusVerified }
