package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/vruksha/portal/apps/api/echo"
	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/core/chat"
	"github.com/vruksha/portal/core/lesson"
	"github.com/vruksha/portal/core/portal"
	"github.com/vruksha/portal/core/teacher"
	emailsvc "github.com/vruksha/portal/services/email"
	logsvc "github.com/vruksha/portal/services/logger"
	"github.com/vruksha/portal/storage/localstore"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up durable storage
	db, err := localstore.Open(conf.Storage.Dir)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening local store: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	teacherSvc := teacher.NewService(localstore.NewTeacherRepository(db), mailSvc, conf)
	lessonSvc := lesson.NewService(
		localstore.NewLessonRepository(db),
		lesson.NewRandomModerator(conf.Moderation.PassRate),
	)
	chatSvc := chat.NewService(conf.AppName, conf.Chat.ReplyDelay)

	store, err := portal.NewStore(teacherSvc, lessonSvc, localstore.NewSessionRepository(db))
	if err != nil {
		logger.Fatal(fmt.Sprintf("initializing portal store: %v", err), err)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	teacher.InitValidators(validate, translator)
	lesson.InitValidators(validate, translator)

	core.ParseEmailTemplates(conf, logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Store:      store,
			ChatSvc:    chatSvc,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("graceful shutdown failed: %v", err), err)
			if err = server.Stop(context.Background()); err != nil {
				logger.Fatal(fmt.Sprintf("stopping server: %v", err), err)
			}
		}
	}
}
