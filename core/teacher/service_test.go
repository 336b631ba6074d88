package teacher_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/core/teacher"
	inmemdb "github.com/vruksha/portal/storage/inmem"
	testutil "github.com/vruksha/portal/tests"
)

func setup(t *testing.T) (teacher.Service, teacher.Repository) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	repo := inmemdb.NewTeacherRepository(db)
	return teacher.NewServiceMock(repo, testutil.NewConfig(t)), repo
}

func Test_service_Register(t *testing.T) {
	svc, repo := setup(t)

	nt := teacher.NewTeacher{
		Name:             "Asha Rao",
		Email:            "asha@school.test",
		Phone:            "+911234567890",
		OrganizationCode: "VRK-001",
		Password:         "grow-trees",
		PasswordConfirm:  "grow-trees",
	}
	tch, err := svc.Register(nt)
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if tch.ID == "" {
		t.Error("Register() did not assign an ID")
	}
	if tch.CreatedAt.IsZero() {
		t.Error("Register() did not assign CreatedAt")
	}

	// same email again: rejected, table unchanged
	nt.Name = "Imposter"
	if _, err = svc.Register(nt); err == nil {
		t.Fatal("Register() with duplicate email should fail")
	}
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("Register() error = %T, want *core.ValidationError", err)
	} else if errors.Cause(vErr.Err) != teacher.ErrEmailExists {
		t.Errorf("Register() error cause = %v, want ErrEmailExists", vErr.Err)
	}

	all, err := repo.QueryAllTeachers()
	if err != nil {
		t.Fatalf("QueryAllTeachers() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("account table length = %d, want 1", len(all))
	}
}

func Test_service_Authenticate(t *testing.T) {
	svc, repo := setup(t)
	testutil.CreateTeacher(t, repo, "Asha Rao", "asha@school.test", "+911234567890", "VRK-001", "grow-trees")

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "asha@school.test", password: "grow-trees"},
		{name: "wrong password", email: "asha@school.test", password: "grow-weeds", wantErr: teacher.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@school.test", password: "grow-trees", wantErr: teacher.ErrInvalidCredentials},
		{name: "email is case-sensitive", email: "Asha@school.test", password: "grow-trees", wantErr: teacher.ErrInvalidCredentials},
		{name: "password is case-sensitive", email: "asha@school.test", password: "Grow-Trees", wantErr: teacher.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tch, err := svc.Authenticate(tt.email, tt.password)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && tch.Email != tt.email {
				t.Errorf("Authenticate() email = %q, want %q", tch.Email, tt.email)
			}
		})
	}
}
