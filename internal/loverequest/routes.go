// internal/loverequest/routes.go

package loverequest

import (
	"github.com/gorilla/mux"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/love-requests").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.SendRequest).Methods("POST")
	api.HandleFunc("/pending", handler.GetPending).Methods("GET")
	api.HandleFunc("/sent", handler.GetSent).Methods("GET")
	api.HandleFunc("/status/{userID:[0-9]+}", handler.GetStatus).Methods("GET")
	api.HandleFunc("/{requestID:[0-9]+}/respond", handler.RespondToRequest).Methods("POST")
}
