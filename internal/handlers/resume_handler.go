package handlers

import (
	"io"
	"mime"
	"net/http"
	"path"

	"hirehub/internal/storage"
	"hirehub/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ResumeHandler streams stored resumes back to the client.
type ResumeHandler struct {
	resumes *storage.Resumes
}

func NewResumeHandler(resumes *storage.Resumes) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

func (handler *ResumeHandler) DownloadResumeHandler(writer http.ResponseWriter, request *http.Request) {
	name := chi.URLParam(request, "name")
	body, err := handler.resumes.Open(request.Context(), name)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	writer.Header().Set("Content-Type", contentType)
	writer.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": name}))
	writer.WriteHeader(http.StatusOK)
	if _, err := io.Copy(writer, body); err != nil {
		utils.GetLogger().Warn("resume download interrupted", zap.String("name", name), zap.Error(err))
	}
}
