package teacher

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/vruksha/portal/core"
)

// Teacher is a registered teacher account.
// Password is the stored login secret; it is compared in plain text (this is
// a mock identity store, see NewService) and never serialized to API output.
type Teacher struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	OrganizationCode string    `json:"organization_code"`
	Password         string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"` // UTC
}

// WithoutPassword returns a session-safe copy of the Teacher.
func (t Teacher) WithoutPassword() Teacher {
	t.Password = ""
	return t
}

// NewTeacher contains information needed to register a new Teacher.
type NewTeacher struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	OrganizationCode string `json:"organization_code" validate:"required,orgcode"`
	Password         string `json:"password" validate:"required,min=6"`
	PasswordConfirm  string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate, translator ut.Translator, svc Service) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email)
	nt.Phone = core.CleanString(nt.Phone)
	nt.OrganizationCode = core.CleanString(nt.OrganizationCode)

	if err := validate.Struct(nt); err != nil {
		return err
	}
	return svc.CheckEmailUniqueness(nt.Email)
}

// Credentials is a login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email)
	return validate.Struct(c)
}
