package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sidereusnuntius/gosocial/internal/dispatch"
)

func (h *Handler) Mount(r chi.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if h.Config.Debug {
		r.Use(RequestLogger)
	}

	r.Get("/state", GetState(h))
	r.Post("/commands", RunCommand(h))
	r.Get("/feed", GetFeed(h))

	r.Post(SignUpRoute, Command(h, dispatch.Register, bodyPayload))
	r.Post(LoginRoute, Command(h, dispatch.Login, bodyPayload))
	r.Post("/logout", Command(h, dispatch.Logout, noPayload))
	r.Post("/theme", Command(h, dispatch.ToggleTheme, noPayload))

	r.Route(PostsPath, func(r chi.Router) {
		r.Post("/", Command(h, dispatch.CreatePost, bodyPayload))
		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", Command(h, dispatch.EditPost, postPayload))
			r.Delete("/", Command(h, dispatch.DeletePost, refPayload))
			r.Post("/like", Command(h, dispatch.ToggleLike, refPayload))
			r.Post("/react/{kind}", Command(h, dispatch.React, reactPayload))
		})
	})
}
