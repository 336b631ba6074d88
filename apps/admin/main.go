package main

import (
	"log"
	"os"

	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/storage/localstore"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up durable storage
	db, err := localstore.Open(conf.Storage.Dir)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		conf:        conf,
		teacherRepo: localstore.NewTeacherRepository(db),
		lessonRepo:  localstore.NewLessonRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
