package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	measurehandler "github.com/enildoa/sp-back/internal/http/measure"
)

func New(measures *measurehandler.Handler, filesDir string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/measures", measures.Routes)

	// Stored meter photos are served back at the URLs recorded on each measure.
	fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(filesDir)))
	router.Get("/files/*", fileServer.ServeHTTP)

	return router
}
