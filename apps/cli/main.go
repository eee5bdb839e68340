package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/educonnect/core"
	"github.com/trezcool/educonnect/core/session"
	logsvc "github.com/trezcool/educonnect/services/logger"
	"github.com/trezcool/educonnect/storage/sessionstore"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	directory, err := session.NewDemoDirectory(bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up demo directory: %v", err), err)
	}

	// start CLI
	cli := commandLine{
		svc: session.NewService(
			directory,
			sessionstore.NewFileStore(conf.CLI.SessionFile),
			conf.Session.LoginDelay,
			logger,
		),
		out: os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
