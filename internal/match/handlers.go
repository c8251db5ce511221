// internal/match/handlers.go

package match

import (
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

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	views, err := h.service.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load matches")
		return
	}

	utils.RespondWithData(w, http.StatusOK, views)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID, err := strconv.ParseInt(mux.Vars(r)["matchID"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid match id")
		return
	}

	m, err := h.service.Get(r.Context(), matchID, userID)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Match not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load match")
		return
	}

	utils.RespondWithData(w, http.StatusOK, m)
}
