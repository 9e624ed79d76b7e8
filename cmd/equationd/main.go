// Command equationd serves the equation store and evaluation API over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/akeriat/equations/api"
	"github.com/akeriat/equations/service"
	"github.com/akeriat/equations/store"
)

func main() {
	var (
		addr   string
		pretty bool
	)
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.BoolVar(&pretty, "pretty", false, "human-readable log output")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if pretty {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	svc := service.New(store.NewMemory(), log)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("stopped")
}
