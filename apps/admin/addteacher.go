package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/core/teacher"
)

// addTeacher registers a teacher.Teacher directly against the account table.
func (cli *commandLine) addTeacher(name, email, phone, orgCode, pwd string) error {
	t := teacher.Teacher{
		ID:               uuid.New().String(),
		Name:             core.CleanString(name),
		Email:            core.CleanString(email),
		Phone:            core.CleanString(phone),
		OrganizationCode: core.CleanString(orgCode),
		Password:         pwd,
		CreatedAt:        time.Now().UTC(),
	}
	if _, err := cli.teacherRepo.CreateTeacher(t); err != nil {
		return err
	}
	logger.Printf("teacher %q (%s) registered", t.Name, t.Email)
	return nil
}
