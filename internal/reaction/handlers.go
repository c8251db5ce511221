// internal/reaction/handlers.go

package reaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
	"github.com/lovelinkapp/lovelink-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) React(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ReactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.service.React(r.Context(), userID, req.TargetProfileID, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyReacted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrSelfReaction):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record reaction")
		}
		return
	}

	utils.RespondWithData(w, http.StatusCreated, rec)
}

// CheckReaction reports the caller's existing verdict on a profile, if any.
func (h *Handler) CheckReaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, err := strconv.ParseInt(mux.Vars(r)["profileID"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile id")
		return
	}

	kind, err := h.service.Check(r.Context(), userID, targetID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check reaction")
		return
	}

	utils.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"reacted": kind != "",
		"kind":    kind,
	})
}

func (h *Handler) GetLikeCount(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserIDFromContext(r.Context()); !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profileID, err := strconv.ParseInt(mux.Vars(r)["profileID"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile id")
		return
	}

	count, err := h.service.LikeCount(r.Context(), profileID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load like count")
		return
	}

	utils.RespondWithData(w, http.StatusOK, map[string]int64{"like_count": count})
}
