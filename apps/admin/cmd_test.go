package main

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/vruksha/portal/core/teacher"
	"github.com/vruksha/portal/storage/localstore"
	testutil "github.com/vruksha/portal/tests"
)

var teacherRepo teacher.Repository

func setup(t *testing.T) *commandLine {
	logger = log.New(ioutil.Discard, "", 0)

	conf := testutil.NewConfig(t)
	db, err := localstore.Open(conf.Storage.Dir)
	if err != nil {
		t.Fatalf("localstore.Open() failed: %v", err)
	}
	teacherRepo = localstore.NewTeacherRepository(db)

	// start CLI
	return &commandLine{
		conf:        conf,
		teacherRepo: teacherRepo,
		lessonRepo:  localstore.NewLessonRepository(db),
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_addTeacher(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	addArgs := func(email string) []string {
		return []string{"addteacher", "-name", "Asha Rao", "-email", email, "-phone", "+91 98765 43210", "-org", "SPRINGFIELD-01"}
	}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addteacher"}, wantErr: errHelp},
		{name: "missing org", args: []string{"addteacher", "-name", "Asha Rao", "-email", "asha@school.test", "-phone", "+91 98765 43210"}, wantErr: errHelp},
		{name: "flags but no password", args: addArgs("asha@school.test"), wantErr: errHelp},
		{name: "registered", args: addArgs("asha@school.test"), extra: extra{pwd: "s3cret!"}},
		{name: "duplicate email", args: addArgs("asha@school.test"), extra: extra{pwd: "other"}, wantErr: teacher.ErrEmailExists},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				tchr, err := teacherRepo.GetTeacherByEmail("asha@school.test")
				if err != nil {
					t.Fatalf("GetTeacherByEmail() failed: %v", err)
				}
				if tchr.Password != "s3cret!" {
					t.Errorf("stored password = %q, want s3cret!", tchr.Password)
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_listing(t *testing.T) {
	cli := setup(t)

	tchr := testutil.CreateTeacher(t, teacherRepo, "Asha Rao", "asha@school.test", "+91 98765 43210", "SPRINGFIELD-01", "s3cret!")
	testutil.CreateLesson(t, cli.lessonRepo, tchr.ID, "Algebra", "verified")

	tests := []cliTest{
		{name: "list teachers", args: []string{"listteachers"}},
		{name: "list all lessons", args: []string{"listlessons"}},
		{name: "list one teacher's lessons", args: []string{"listlessons", "-teacher", "asha@school.test"}},
		{name: "unknown teacher", args: []string{"listlessons", "-teacher", "nobody@school.test"}, wantErr: teacher.ErrNotFound},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
