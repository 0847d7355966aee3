package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/verhuizer/internal/http/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/export"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/importcsv"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/packing"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/playbook"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/project"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/share"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/shopping"
	"github.com/MrJamesThe3rd/verhuizer/internal/http/task"
)

func New(
	projectsV1 *project.Handler,
	costsV1 *cost.Handler,
	tasksV1 *task.Handler,
	shoppingV1 *shopping.Handler,
	packingV1 *packing.Handler,
	playbookV1 *playbook.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	shareV1 *share.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			projectsV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			costsV1.Routes(r)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			tasksV1.Routes(r)
		})

		r.Route("/shopping", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			shoppingV1.Routes(r)
		})

		// rooms and boxes
		packingV1.Routes(r)

		r.Route("/playbook", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			playbookV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})

		r.Route("/share", shareV1.Routes)
	})

	return router
}
