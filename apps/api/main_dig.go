package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dig_container "github.com/trezcool/escolar/apps/api/di/dig"
	echoapi "github.com/trezcool/escolar/apps/api/echo"
	"github.com/trezcool/escolar/core"
)

const shutdownTimeout = 10 * time.Second

func startWithDig() {
	c := dig_container.New()

	must(c.Invoke(func(conf *core.Config, apiLogger core.Logger, server echoapi.Server) {
		apiLogger.Info(fmt.Sprintf("Sandbox API initializing : version %q", conf.Build))
		defer apiLogger.Info("Sandbox API stopped")

		// =========================================================================
		// Start API Service

		serverErrors := make(chan error, 1)
		go func() {
			serverErrors <- server.Start()
		}()

		// =========================================================================
		// Shutdown

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if err != nil && err != http.ErrServerClosed {
				apiLogger.Fatal(fmt.Sprintf("server error: %v", err), err)
			}

		case sig := <-shutdown:
			apiLogger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

			// give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Stop(ctx); err != nil {
				apiLogger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
			}
		}
	}))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
