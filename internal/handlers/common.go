package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"hirehub/internal/apperr"
	"hirehub/internal/middleware"
	"hirehub/internal/models"
	"hirehub/internal/storage"

	"github.com/cockroachdb/errors"
)

// multipart bodies larger than this are rejected before parsing
const maxMultipartBody = storage.MaxResumeSize + 1<<20

func callerOf(request *http.Request) models.Caller {
	caller, _ := middleware.CallerFrom(request.Context())
	return caller
}

func decodeJSON(request *http.Request, v any) error {
	if err := json.NewDecoder(request.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("Request body is required")
		}
		return apperr.Validation("Invalid JSON in request body")
	}
	return nil
}

func isMultipart(request *http.Request) bool {
	return strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data")
}

// parseMultipart parses a multipart body and returns the optional file
// under field. A missing file yields a nil upload.
func parseMultipart(writer http.ResponseWriter, request *http.Request, field string) (*storage.Upload, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxMultipartBody)
	if err := request.ParseMultipartForm(storage.MaxResumeSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.Validation("File too large")
		}
		return nil, apperr.Validation("Invalid multipart form")
	}
	file, header, err := request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Validation("Invalid multipart form")
	}
	return uploadFrom(file, header), nil
}

func uploadFrom(file multipart.File, header *multipart.FileHeader) *storage.Upload {
	return &storage.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
}

// splitList accepts the comma separated form of a list field.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
