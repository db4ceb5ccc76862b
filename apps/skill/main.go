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

	alexaskill "github.com/trezcool/kesho/apps/skill/alexa"
	"github.com/trezcool/kesho/core"
	"github.com/trezcool/kesho/core/assignment"
	canvasevents "github.com/trezcool/kesho/services/events/canvas"
	dummyevents "github.com/trezcool/kesho/services/events/dummy"
	logsvc "github.com/trezcool/kesho/services/logger"
	alexaprofile "github.com/trezcool/kesho/services/profile/alexa"
	dummyprofile "github.com/trezcool/kesho/services/profile/dummy"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "SKILL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	var eventSrc assignment.EventSource
	var profileSvc core.ProfileService
	if conf.Debug {
		eventSrc = dummyevents.NewService()
		profileSvc = dummyprofile.NewService("human")
	} else {
		eventSrc = canvasevents.NewService(conf)
		profileSvc = alexaprofile.NewService()
	}
	assignSvc := assignment.NewService(eventSrc, conf.Location())

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	core.InitValidators(validate, core.Translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start Skill Service

	server := alexaskill.NewServer(
		alexaskill.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			AssignSvc:  assignSvc,
			ProfileSvc: profileSvc,
			Validate:   validate,
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

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
	}
}
