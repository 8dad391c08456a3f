package handler

import (
	"net/http"

	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"

	"github.com/gorilla/mux"
)

type AIModelHandler struct {
	aiModelUsecase usecase.AIModelUsecase
}

func NewAIModelHandler(aiModelUsecase usecase.AIModelUsecase) *AIModelHandler {
	return &AIModelHandler{aiModelUsecase: aiModelUsecase}
}

// GetAllModels lists the catalog
// @Summary List AI models
// @Tags AI Models
// @Security BearerAuth
// @Produce json
// @Param category query string false "diagnosis, imaging, treatment, pharmacy, research or all"
// @Param q query string false "Search titles and descriptions"
// @Success 200 {object} response.Response
// @Router /ai-models [get]
func (h *AIModelHandler) GetAllModels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	models, err := h.aiModelUsecase.List(r.Context(), q.Get("category"), q.Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to get AI models")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "AI models retrieved successfully", models, &response.Meta{Total: len(models)})
}

// GetModel returns the details shown in the model dialog
// @Summary Get AI model details
// @Tags AI Models
// @Security BearerAuth
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /ai-models/{id} [get]
func (h *AIModelHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	model, err := h.aiModelUsecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrModelNotFound:
			response.NotFound(w, "Model information not found.")
		default:
			response.InternalServerError(w, "Failed to get AI model")
		}
		return
	}

	response.Success(w, http.StatusOK, "AI model retrieved successfully", model)
}
