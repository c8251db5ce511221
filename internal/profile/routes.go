// internal/profile/routes.go

package profile

import (
	"github.com/gorilla/mux"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/profile").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetMyProfile).Methods("GET")
	api.HandleFunc("", handler.UpdateProfile).Methods("PUT", "PATCH")
	api.HandleFunc("/avatar", handler.UploadAvatar).Methods("POST")
	api.HandleFunc("/avatar", handler.DeleteAvatar).Methods("DELETE")
}
