// internal/match/routes.go

package match

import (
	"github.com/gorilla/mux"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matches").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.ListMatches).Methods("GET")
	api.HandleFunc("/{matchID:[0-9]+}", handler.GetMatch).Methods("GET")
}
