package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	echoapi "github.com/trezcool/educonnect/apps/api/echo"
	"github.com/trezcool/educonnect/core"
	"github.com/trezcool/educonnect/core/school"
	"github.com/trezcool/educonnect/core/session"
	emailsvc "github.com/trezcool/educonnect/services/email"
	logsvc "github.com/trezcool/educonnect/services/logger"
	inmemdb "github.com/trezcool/educonnect/storage/inmem"
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

	directory, err := session.NewDemoDirectory(bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up demo directory: %v", err), err)
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	schoolSvc := school.NewService(inmemdb.OpenSeeded(), mailSvc, logger)

	var rdb *redis.Client
	if conf.Session.Backend == core.SessionBackendRedis {
		rdb, err = setUpRedis(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up redis: %v", err), err)
		}
		defer func() {
			if err = rdb.Close(); err != nil {
				logger.Error(fmt.Sprintf("closing redis: %v", err), err)
			}
		}()
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	translator := core.NewTranslator()
	validate := core.NewValidator(translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("sessionBackend").Set(conf.Session.Backend)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	deps := echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Auth:       directory,
		SchoolSvc:  schoolSvc,
		Validate:   validate,
		Translator: translator,
	}
	if rdb != nil {
		deps.Redis = rdb
	}
	server := echoapi.NewServer(deps)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpRedis(conf *core.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Session.RedisAddr,
		Password: conf.Session.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
