package handler

import (
	"encoding/json"
	"net/http"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
	"edoc-portal/pkg/validator"
)

type TeamHandler struct {
	teamUsecase usecase.TeamUsecase
	validator   *validator.CustomValidator
}

func NewTeamHandler(teamUsecase usecase.TeamUsecase, validator *validator.CustomValidator) *TeamHandler {
	return &TeamHandler{
		teamUsecase: teamUsecase,
		validator:   validator,
	}
}

func (h *TeamHandler) GetAllTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamUsecase.List(r.Context(), listQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get team members")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Team members retrieved successfully", members, &response.Meta{Total: len(members)})
}

func (h *TeamHandler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid team member ID", nil)
		return
	}

	member, err := h.teamUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		default:
			response.InternalServerError(w, "Failed to get team member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member retrieved successfully", member)
}

func (h *TeamHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	member, err := h.teamUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to add team member")
		return
	}

	response.Success(w, http.StatusCreated, "Team member added successfully", member)
}

func (h *TeamHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid team member ID", nil)
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	member, err := h.teamUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		default:
			response.InternalServerError(w, "Failed to update team member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member updated successfully", member)
}

func (h *TeamHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid team member ID", nil)
		return
	}

	if err := h.teamUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		default:
			response.InternalServerError(w, "Failed to delete team member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member removed successfully", nil)
}

func (h *TeamHandler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.teamUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get team statistics")
		return
	}

	response.Success(w, http.StatusOK, "Team statistics retrieved successfully", stats)
}

func (h *TeamHandler) GetDepartmentPerformance(w http.ResponseWriter, r *http.Request) {
	departments, err := h.teamUsecase.DepartmentPerformance(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get department performance")
		return
	}

	response.Success(w, http.StatusOK, "Department performance retrieved successfully", departments)
}

func (h *TeamHandler) ExportTeam(w http.ResponseWriter, r *http.Request) {
	export, err := h.teamUsecase.Export(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error exporting team data")
		return
	}

	writeExport(w, "team", export)
}

func (h *TeamHandler) ImportTeam(w http.ResponseWriter, r *http.Request) {
	var req dto.TeamImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Error parsing import file", nil)
		return
	}

	count, err := h.teamUsecase.Import(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidImport:
			response.Error(w, http.StatusBadRequest, "Invalid file format", nil)
		default:
			response.InternalServerError(w, "Error importing team data")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team data imported successfully", map[string]int{"imported": count})
}
