// internal/loverequest/handlers.go

package loverequest

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

func (h *Handler) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Send(r.Context(), userID, req.ReceiverID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfRequest):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrRequestPending),
			errors.Is(err, ErrAlreadyMatched),
			errors.Is(err, ErrPreviouslyDeclined):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send love request")
		}
		return
	}

	utils.RespondWithData(w, http.StatusCreated, created)
}

func (h *Handler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestID"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var body RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resolved, matchID, err := h.service.Respond(r.Context(), requestID, userID, body.Accept)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotReceiver):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to respond to love request")
		}
		return
	}

	data := map[string]interface{}{"request": resolved}
	if resolved.Status == StatusAccepted {
		data["match_id"] = matchID
	}
	utils.RespondWithData(w, http.StatusOK, data)
}

// GetStatus reports the request state between the caller and another user.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID, err := strconv.ParseInt(mux.Vars(r)["userID"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	status, err := h.service.Status(r.Context(), userID, otherID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check request status")
		return
	}
	if status == "" {
		status = "none"
	}

	utils.RespondWithData(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) GetPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requests, err := h.service.Pending(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load pending requests")
		return
	}

	utils.RespondWithData(w, http.StatusOK, requests)
}

func (h *Handler) GetSent(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requests, err := h.service.Sent(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load sent requests")
		return
	}

	utils.RespondWithData(w, http.StatusOK, requests)
}
