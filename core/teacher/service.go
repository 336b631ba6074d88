package teacher

import (
	"crypto/subtle"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vruksha/portal/core"
)

var (
	// errors
	ErrNotFound           = errors.New("teacher not found")
	ErrEmailExists        = errors.New("a teacher with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	// Repository is the durable account table port.
	Repository interface {
		CheckEmailUniqueness(email string) error
		CreateTeacher(t Teacher) (Teacher, error)
		GetTeacherByID(id string) (Teacher, error)
		GetTeacherByEmail(email string) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
	}

	Service interface {
		CheckEmailUniqueness(email string) error
		Register(nt NewTeacher) (Teacher, error)
		Authenticate(email, password string) (Teacher, error)
		GetByID(id string) (Teacher, error)
		GetByEmail(email string) (Teacher, error)
		QueryAll() ([]Teacher, error)
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

var _ Service = (*service)(nil)

// NewService returns the account Service.
// Passwords are stored and compared in plain text: the portal is a mock with
// no real credential pipeline behind it.
func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) Service {
	return &service{
		repo:    repo,
		mailSvc: mailSvc,
		conf:    conf,
	}
}

func (svc *service) CheckEmailUniqueness(email string) error {
	if err := svc.repo.CheckEmailUniqueness(email); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates the account without establishing a session.
func (svc *service) Register(nt NewTeacher) (Teacher, error) {
	t := Teacher{
		ID:               uuid.New().String(),
		Name:             nt.Name,
		Email:            nt.Email,
		Phone:            nt.Phone,
		OrganizationCode: nt.OrganizationCode,
		Password:         nt.Password,
		CreatedAt:        time.Now().UTC(),
	}
	t, err := svc.repo.CreateTeacher(t)
	if err != nil {
		if err == ErrEmailExists {
			return Teacher{}, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return Teacher{}, errors.Wrap(err, "creating teacher")
	}
	svc.sendWelcomeMail(t)
	return t, nil
}

// Authenticate matches email and password exactly; failures collapse into
// ErrInvalidCredentials so callers cannot tell which field was wrong.
func (svc *service) Authenticate(email, password string) (Teacher, error) {
	t, err := svc.repo.GetTeacherByEmail(email)
	if err != nil {
		if err == ErrNotFound {
			return Teacher{}, ErrInvalidCredentials
		}
		return Teacher{}, errors.Wrap(err, "finding teacher by email")
	}
	if subtle.ConstantTimeCompare([]byte(t.Password), []byte(password)) != 1 {
		return Teacher{}, ErrInvalidCredentials
	}
	return t, nil
}

func (svc *service) GetByID(id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(id)
}

func (svc *service) GetByEmail(email string) (Teacher, error) {
	return svc.repo.GetTeacherByEmail(core.CleanString(email))
}

func (svc *service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *service) sendWelcomeMail(t Teacher) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: t.Name, Address: t.Email}},
		Subject:      "Welcome to " + svc.conf.AppName,
		TemplateName: "welcome",
		TemplateData: struct{ Name string }{t.Name},
	})
}
