// internal/chat/routes.go

package chat

import (
	"github.com/gorilla/mux"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/chat").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/ws", handler.ServeWS).Methods("GET")
	api.HandleFunc("/{matchID:[0-9]+}/messages", handler.GetHistory).Methods("GET")
	api.HandleFunc("/{matchID:[0-9]+}/messages", handler.SendMessage).Methods("POST")
	api.HandleFunc("/{matchID:[0-9]+}/quota", handler.GetQuota).Methods("GET")
	api.HandleFunc("/{matchID:[0-9]+}/read", handler.MarkRead).Methods("POST")
}
