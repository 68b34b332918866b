package web

import (
	"github.com/sidereusnuntius/gosocial/internal/config"
	"github.com/sidereusnuntius/gosocial/internal/dispatch"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
	PostsPath   = "/posts"
)

type Handler struct {
	Config     *config.Configuration
	dispatcher *dispatch.Dispatcher
}

func New(config *config.Configuration, dispatcher *dispatch.Dispatcher) Handler {
	return Handler{
		Config:     config,
		dispatcher: dispatcher,
	}
}
