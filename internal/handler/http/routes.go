package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// ops endpoints, uncompressed
	router.Get("/healthz", h.healthz)
	if h.gatherer != nil {
		router.Handle(h.metricsPath, promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	router.Route("/api", func(api chi.Router) {
		api.Use(withGZip)
		if h.requestTimeout > 0 {
			api.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Get("/version", h.getServerVersion)
			r.Post("/user/register", h.register)
			r.Post("/user/login", h.login)
			r.Post("/support/guest", h.submitGuestMessage)
		})

		// any authenticated account
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/user/logout", h.logout)
			r.Get("/me", h.me)
			r.Post("/blocklist/search", h.search)
			r.Post("/blocklist", h.addBlock)
			r.Post("/support/messages", h.submitSupportMessage)
		})

		// admins only
		api.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(requireAdmin)

			r.Get("/blocklist", h.listBlocks)
			r.Delete("/blocklist/{civilID}", h.removeBlock)

			r.Get("/admin/accounts", h.listAccounts)
			r.Post("/admin/accounts", h.createAccount)
			r.Delete("/admin/accounts/{id}", h.deleteAccount)
			r.Put("/admin/accounts/{id}/searches", h.setRemainingSearches)
			r.Put("/admin/credentials", h.updateCredentials)
			r.Get("/admin/activity", h.listActivity)
			r.Get("/admin/support/messages", h.listSupportMessages)
			r.Put("/admin/support/messages/{id}/status", h.updateSupportStatus)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
