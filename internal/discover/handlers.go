// internal/discover/handlers.go

package discover

import (
	"net/http"
	"strconv"

	"github.com/lovelinkapp/lovelink-backend/internal/auth"
	"github.com/lovelinkapp/lovelink-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetFeed returns the discovery feed, filtered by optional query params.
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := filtersFromQuery(r)

	feed, err := h.service.Feed(r.Context(), userID, filters)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load discovery feed")
		return
	}

	utils.RespondWithData(w, http.StatusOK, feed)
}

func filtersFromQuery(r *http.Request) *Filters {
	q := r.URL.Query()
	f := &Filters{
		Gender:     q.Get("gender"),
		Location:   q.Get("location"),
		LookingFor: q.Get("looking_for"),
		Education:  q.Get("education"),
	}
	if v, err := strconv.Atoi(q.Get("age_min")); err == nil && v > 0 {
		f.AgeMin = v
	}
	if v, err := strconv.Atoi(q.Get("age_max")); err == nil && v > 0 {
		f.AgeMax = v
	}
	return f
}
