package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(h.gate)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/user", func(r chi.Router) {
				r.Get("/", h.getProfile)
				r.Put("/name", h.updateName)
				r.Put("/password", h.changePassword)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.listTransactions)
				r.Post("/", h.createTransaction)
				r.Put("/{id}", h.updateTransaction)
				r.Delete("/{id}", h.deleteTransaction)
			})

			r.Get("/dashboard/stats", h.getDashboardStats)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
