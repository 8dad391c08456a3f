package handler

import (
	"encoding/json"
	"net/http"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
	"edoc-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type AssistantHandler struct {
	assistantUsecase usecase.AssistantUsecase
	validator        *validator.CustomValidator
}

func NewAssistantHandler(assistantUsecase usecase.AssistantUsecase, validator *validator.CustomValidator) *AssistantHandler {
	return &AssistantHandler{
		assistantUsecase: assistantUsecase,
		validator:        validator,
	}
}

// Chat handles a message to the medical assistant
// @Summary Ask the assistant
// @Tags Assistant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assistant [post]
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	reply, err := h.assistantUsecase.Chat(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get assistant response")
		return
	}

	response.Success(w, http.StatusOK, "Response generated", reply)
}

func (h *AssistantHandler) GetRecentChats(w http.ResponseWriter, r *http.Request) {
	entries, err := h.assistantUsecase.Recent(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get chat history")
		return
	}

	response.Success(w, http.StatusOK, "Chat history retrieved successfully", entries)
}

func (h *AssistantHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	entries, err := h.assistantUsecase.Session(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		response.InternalServerError(w, "Failed to get chat session")
		return
	}

	response.Success(w, http.StatusOK, "Chat session retrieved successfully", entries)
}

func (h *AssistantHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.assistantUsecase.ClearSession(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		response.InternalServerError(w, "Failed to clear chat")
		return
	}

	response.Success(w, http.StatusOK, "Chat cleared", cleared)
}

func (h *AssistantHandler) ExportSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	export, err := h.assistantUsecase.ExportSession(r.Context(), sessionID)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "No messages to export")
		default:
			response.InternalServerError(w, "Failed to export chat")
		}
		return
	}

	body, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		response.InternalServerError(w, "Failed to export chat")
		return
	}
	response.Attachment(w, "chat-export-"+sessionID+".json", "application/json", body)
}
