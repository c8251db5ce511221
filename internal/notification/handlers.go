// internal/notification/handlers.go

package notification

import (
	"encoding/json"
	"net/http"

	"github.com/lovelinkapp/lovelink-backend/internal/auth"
	"github.com/lovelinkapp/lovelink-backend/internal/common/utils"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req RegisterTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	token := &DeviceToken{
		UserID:   userID,
		Token:    req.Token,
		Platform: req.Platform,
	}
	if err := h.repo.SaveToken(r.Context(), token); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register device token")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, token)
}

func (h *Handler) UnregisterToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.repo.DeleteToken(r.Context(), userID, req.Token); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove device token")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Device token removed")
}
