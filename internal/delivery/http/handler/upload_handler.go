package handler

import (
	"errors"
	"net/http"

	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
)

const (
	multipartMemory = 32 << 20
	uploadField     = "files"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	maxBodySize   int64
}

// NewUploadHandler caps the request body at maxFiles * maxFileSize plus
// room for the multipart framing.
func NewUploadHandler(uploadUsecase usecase.UploadUsecase, maxFileSize int64, maxFiles int) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		maxBodySize:   maxFileSize*int64(maxFiles) + 1<<20,
	}
}

// UploadImage handles medical image uploads
// @Summary Upload medical images
// @Tags Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images or DICOM files"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 413 {object} response.Response
// @Router /upload-image [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, entity.UploadKindImage)
}

// UploadLab handles lab result uploads
// @Summary Upload lab results
// @Tags Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "PDF, CSV, text, spreadsheet or image files"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 413 {object} response.Response
// @Router /upload-lab [post]
func (h *UploadHandler) UploadLab(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, entity.UploadKindLab)
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request, kind string) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "Upload is too large", nil)
			return
		}
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	uploaded, err := h.uploadUsecase.Upload(r.Context(), kind, r.MultipartForm.File[uploadField])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoFiles):
			response.Error(w, http.StatusBadRequest, "No files uploaded", nil)
		case errors.Is(err, usecase.ErrTooManyFiles), errors.Is(err, usecase.ErrUnsupportedFileType):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrFileTooLarge):
			response.Error(w, http.StatusRequestEntityTooLarge, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to store uploaded files")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Files uploaded successfully", uploaded)
}
