package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/vruksha/portal/core/lesson"
)

func (cli *commandLine) listTeachers() error {
	teachers, err := cli.teacherRepo.QueryAllTeachers()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tORG\tREGISTERED")
	for _, t := range teachers {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Name, t.Email, t.Phone, t.OrganizationCode, t.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func (cli *commandLine) listLessons(teacherEmail string) error {
	var lessons []lesson.Lesson

	if teacherEmail != "" {
		t, err := cli.teacherRepo.GetTeacherByEmail(teacherEmail)
		if err != nil {
			return err
		}
		if lessons, err = cli.lessonRepo.QueryLessonsByTeacher(t.ID); err != nil {
			return err
		}
	} else {
		var err error
		if lessons, err = cli.lessonRepo.QueryAllLessons(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SUBJECT\tOWNER\tSTATUS\tFILES\tSUBMITTED\tREASON")
	for _, l := range lessons {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			l.Subject, l.TeacherID, l.Status, len(l.Files), l.CreatedAt.Format(time.RFC3339), l.RejectionReason)
	}
	return w.Flush()
}
