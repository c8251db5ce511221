// internal/profile/handlers.go

package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lovelinkapp/lovelink-backend/internal/auth"
	"github.com/lovelinkapp/lovelink-backend/internal/common/utils"
)

type Handler struct {
	service       Service
	maxAvatarSize int64
}

func NewHandler(service Service, maxAvatarSize int64) *Handler {
	return &Handler{service: service, maxAvatarSize: maxAvatarSize}
}

// GetMyProfile returns the caller's profile, creating it if needed
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := h.service.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	utils.RespondWithData(w, http.StatusOK, p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithData(w, http.StatusOK, p)
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(h.maxAvatarSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing avatar file")
		return
	}
	defer file.Close()

	url, err := h.service.UploadAvatar(r.Context(), userID, file, header)
	if err != nil {
		if errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrBadFileType) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	utils.RespondWithData(w, http.StatusOK, map[string]string{"avatar_url": url})
}

func (h *Handler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteAvatar(r.Context(), userID); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete avatar")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Avatar removed")
}
