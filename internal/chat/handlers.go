// internal/chat/handlers.go

package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/lovelinkapp/lovelink-backend/internal/auth"
	"github.com/lovelinkapp/lovelink-backend/internal/common/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Auth happens via the bearer token, not the origin.
		return true
	},
}

type Handler struct {
	service Service
	hub     *Hub
}

func NewHandler(service Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
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

	messages, err := h.service.History(r.Context(), matchID, userID)
	if err != nil {
		respondChatError(w, err, "Failed to load messages")
		return
	}

	utils.RespondWithData(w, http.StatusOK, messages)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
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

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sent, err := h.service.Send(r.Context(), matchID, userID, req.Content)
	if err != nil {
		respondChatError(w, err, "Failed to send message")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, sent)
}

func (h *Handler) GetQuota(w http.ResponseWriter, r *http.Request) {
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

	quota, err := h.service.Quota(r.Context(), matchID, userID)
	if err != nil {
		respondChatError(w, err, "Failed to load quota")
		return
	}

	utils.RespondWithData(w, http.StatusOK, quota)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.MarkRead(r.Context(), matchID, userID); err != nil {
		respondChatError(w, err, "Failed to mark messages read")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Messages marked read")
}

// ServeWS upgrades the connection and hands it to the hub.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := NewClient(h.hub, conn, userID, h.service)
	client.Start()
}

func respondChatError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMatchNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrEmptyMessage):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMessageQuota):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
