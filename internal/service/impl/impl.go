package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/sidereusnuntius/gosocial/internal/config"
	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/service"
	"github.com/sidereusnuntius/gosocial/internal/state"
)

type Clock interface {
	Now() time.Time
}

type AppService struct {
	Config config.Configuration
	DB     db.DB
	Clock  Clock
	// NewID generates post and account ids.
	NewID func() string
}

func New(state *state.State, clock Clock) service.Service {
	return &AppService{
		Config: state.Config,
		DB:     state.DB,
		Clock:  clock,
		NewID:  uuid.NewString,
	}
}

func (s *AppService) now() time.Time {
	return s.Clock.Now().UTC()
}
