package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/samandr77/microservices/crm/docs" //nolint:revive,nolintlint
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/me", h.Me)
			r.Get("/dashboard", h.Dashboard)

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.ListContacts)
				r.Post("/", h.CreateContact)
				r.Post("/import", h.ImportContacts)
				r.Get("/{id}", h.ContactDetail)
				r.Put("/{id}", h.UpdateContact)
				r.Delete("/{id}", h.DeleteContact)
			})

			r.Route("/propositions", func(r chi.Router) {
				r.Get("/", h.ListPropositions)
				r.Post("/", h.CreateProposition)
				r.Put("/{id}", h.UpdateProposition)
			})

			r.Route("/contrats", func(r chi.Router) {
				r.Get("/", h.ListContrats)
				r.Post("/", h.CreateContrat)
			})

			r.Route("/taches", func(r chi.Router) {
				r.Get("/", h.ListTaches)
				r.Post("/", h.CreateTache)
				r.Put("/{id}", h.UpdateTache)
				r.Put("/{id}/statut", h.ChangeTacheStatus)
			})

			r.Route("/objectifs", func(r chi.Router) {
				r.Get("/", h.ListObjectifs)
				r.Post("/", h.CreateObjectif)
				r.Put("/{id}", h.UpdateObjectif)
			})

			r.Route("/campagnes", func(r chi.Router) {
				r.Get("/", h.ListCampagnes)
				r.Post("/", h.CreateCampagne)
				r.Put("/{id}", h.UpdateCampagne)
			})
		})
	})

	return router
}
