// internal/reaction/routes.go

package reaction

import (
	"github.com/gorilla/mux"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/reactions").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.React).Methods("POST")
	api.HandleFunc("/{profileID:[0-9]+}", handler.CheckReaction).Methods("GET")
	api.HandleFunc("/{profileID:[0-9]+}/likes", handler.GetLikeCount).Methods("GET")
}
