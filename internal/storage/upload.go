// Package storage validates résumé uploads and persists them to the local
// filesystem or a GCS bucket.
package storage

import (
	"bytes"
	"context"
	"io"
	"mime"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hirehub/internal/apperr"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	// MaxResumeSize is the largest accepted résumé, in bytes.
	MaxResumeSize = 5 << 20
	// ResumeDir is the public path prefix of stored résumés.
	ResumeDir = "uploads/resumes"
)

var allowedTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Upload is a file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store is a flat blob namespace keyed by file name.
type Store interface {
	Save(ctx context.Context, name string, body io.Reader, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes name; a missing file is not an error.
	Delete(ctx context.Context, name string) error
}

// ErrNotExist is returned by Store.Open for an unknown name.
var ErrNotExist = errors.New("stored file does not exist")

// Validate applies the upload filter: extension and declared content type
// must both be pdf, doc or docx, and the file must fit MaxResumeSize.
func Validate(u Upload) error {
	ext := strings.ToLower(filepath.Ext(u.Filename))
	if _, ok := allowedTypes[ext]; !ok {
		return apperr.Validation("Only PDF, DOC, DOCX files are allowed")
	}
	mediaType, _, err := mime.ParseMediaType(u.ContentType)
	if err != nil || !contentTypeAllowed(mediaType) {
		return apperr.Validation("Only PDF, DOC, DOCX files are allowed")
	}
	if u.Size > MaxResumeSize {
		return apperr.Validation("File too large")
	}
	return nil
}

// Any of the three document types is accepted for any allowed extension.
func contentTypeAllowed(mediaType string) bool {
	for _, t := range allowedTypes {
		if mediaType == t {
			return true
		}
	}
	return false
}

// StoredName builds the on-disk name `<unix-millis>-<sanitized original>`.
func StoredName(now time.Time, original string) string {
	base := path.Base(strings.ReplaceAll(original, `\`, "/"))
	base = unsafeNameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "resume"
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + base
}

// Resumes validates and stores résumé uploads.
type Resumes struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewResumes(store Store, logger *zap.Logger) *Resumes {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resumes{store: store, logger: logger, now: time.Now}
}

// Save stores u and returns its public path under ResumeDir. Validation
// failures are returned before anything is written.
func (r *Resumes) Save(ctx context.Context, u Upload) (string, error) {
	if err := Validate(u); err != nil {
		return "", err
	}
	data, err := io.ReadAll(io.LimitReader(u.Body, MaxResumeSize+1))
	if err != nil {
		return "", apperr.Internal(err, "failed to read upload")
	}
	if len(data) > MaxResumeSize {
		return "", apperr.Validation("File too large")
	}

	name := StoredName(r.now(), u.Filename)
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		if pages, err := InspectPDF(data); err != nil {
			r.logger.Warn("uploaded pdf could not be inspected", zap.String("file", name), zap.Error(err))
		} else {
			r.logger.Info("stored pdf resume", zap.String("file", name), zap.Int("pages", pages))
		}
	}

	mediaType, _, _ := mime.ParseMediaType(u.ContentType)
	if err := r.store.Save(ctx, name, bytes.NewReader(data), mediaType); err != nil {
		return "", apperr.Internal(err, "failed to store upload")
	}
	return ResumeDir + "/" + name, nil
}

// Remove deletes a résumé by the public path Save returned.
func (r *Resumes) Remove(ctx context.Context, publicPath string) error {
	name := strings.TrimPrefix(publicPath, ResumeDir+"/")
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return errors.Newf("not a stored resume path %q", publicPath)
	}
	return r.store.Delete(ctx, name)
}

// Open streams a stored résumé by its bare file name.
func (r *Resumes) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return nil, apperr.NotFound("File not found")
	}
	rc, err := r.store.Open(ctx, name)
	if errors.Is(err, ErrNotExist) {
		return nil, apperr.NotFound("File not found")
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to open upload")
	}
	return rc, nil
}
