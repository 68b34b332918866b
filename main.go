package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/config"
	db "github.com/sidereusnuntius/gosocial/internal/db/impl"
	"github.com/sidereusnuntius/gosocial/internal/dispatch"
	"github.com/sidereusnuntius/gosocial/internal/initialization"
	service "github.com/sidereusnuntius/gosocial/internal/service/impl"
	"github.com/sidereusnuntius/gosocial/internal/state"
	"github.com/sidereusnuntius/gosocial/internal/web"
)

type Clock struct{}

func (c Clock) Now() time.Time {
	return time.Now()
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	store, closeStore, err := initialization.OpenStore(&config)
	if err != nil {
		log.Fatal().Err(err).Str("storage", config.Storage).Msg("failed to open store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()
	log.Info().Str("storage", config.Storage).Msg("store opened")

	state := state.State{
		DB:     db.New(store),
		Config: config,
	}
	service := service.New(&state, Clock{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.SeedDemo {
		if err = service.SeedDemo(ctx); err != nil {
			log.Error().Err(err).Msg("failed to seed demo posts")
		}
	}

	handler := web.New(&config, dispatch.New(service))
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Uint16("port", config.Port).Msg("started server")
	if err = s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server stopped")
	}
}
