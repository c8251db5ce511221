// internal/notification/routes.go

package notification

import (
	"github.com/gorilla/mux"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/notifications").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/tokens", handler.RegisterToken).Methods("POST")
	api.HandleFunc("/tokens", handler.UnregisterToken).Methods("DELETE")
}
