package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/core/lesson"
	"github.com/vruksha/portal/core/teacher"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf        *core.Config
	teacherRepo teacher.Repository
	lessonRepo  lesson.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addteacher -name NAME -email EMAIL -phone PHONE -org ORGCODE - register a teacher; the password will be prompted next")
	fmt.Println("  listteachers - list registered teachers")
	fmt.Println("  listlessons [-teacher EMAIL] - list submitted lessons, optionally for one teacher")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addTeacherCmd := flag.NewFlagSet("addteacher", flag.ExitOnError)
	addTeacherName := addTeacherCmd.String("name", "", "The teacher's full name.")
	addTeacherEmail := addTeacherCmd.String("email", "", "The teacher's email. Must be unique.")
	addTeacherPhone := addTeacherCmd.String("phone", "", "The teacher's phone number.")
	addTeacherOrg := addTeacherCmd.String("org", "", "The teacher's organization code.")

	listLessonsCmd := flag.NewFlagSet("listlessons", flag.ExitOnError)
	listLessonsEmail := listLessonsCmd.String("teacher", "", "Only list lessons owned by this teacher email.")

	switch args[1] {
	case "addteacher":
		if err := addTeacherCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addTeacherName == "" || *addTeacherEmail == "" || *addTeacherPhone == "" || *addTeacherOrg == "" {
			addTeacherCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addTeacherCmd.Usage()
			return errHelp
		}
		return cli.addTeacher(*addTeacherName, *addTeacherEmail, *addTeacherPhone, *addTeacherOrg, string(pwd))
	case "listteachers":
		return cli.listTeachers()
	case "listlessons":
		if err := listLessonsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listLessons(*listLessonsEmail)
	default:
		cli.printUsage()
		return errHelp
	}
}
