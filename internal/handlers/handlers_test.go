package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hirehub/internal/models"
	"hirehub/internal/repositories"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/testhelpers"
	"hirehub/internal/utils"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *repositories.UserRepository, *storage.Resumes) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	resumes := storage.NewResumes(store, nil)
	users := &repositories.UserRepository{DB: db}
	return NewAuthHandler(services.NewAuthService(users, resumes, nil, "secret", nil), true), users, resumes
}

func multipartRegister(t *testing.T, fields map[string]string, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		part, err := mw.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="resume"; filename="` + filename + `"`},
			"Content-Type":        {contentType},
		})
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRegisterHandler_Multipart(t *testing.T) {
	handler, users, _ := newAuthHandler(t)
	req := multipartRegister(t, map[string]string{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "secret",
		"skills":   "go, sql ,, docker",
	}, "cv.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("docx"))
	rec := httptest.NewRecorder()

	handler.RegisterHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "candidate", out["role"])
	assert.NotContains(t, out, "password")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	user, err := users.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql", "docker"}, []string(user.Skills))
	assert.True(t, strings.HasPrefix(user.Resume, storage.ResumeDir+"/"))
	assert.True(t, strings.HasSuffix(user.Resume, "-cv.docx"))
}

func TestRegisterHandler_RejectsBadUpload(t *testing.T) {
	handler, users, _ := newAuthHandler(t)
	req := multipartRegister(t, map[string]string{
		"name": "bob", "email": "bob@example.com", "password": "secret",
	}, "cv.png", "image/png", []byte("png"))
	rec := httptest.NewRecorder()

	handler.RegisterHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only PDF, DOC, DOCX files are allowed")
	_, err := users.GetUserByEmail(context.Background(), "bob@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRegisterHandler_JSONSkills(t *testing.T) {
	for name, skills := range map[string]string{
		"array":  `["go","sql"]`,
		"string": `"go, sql"`,
	} {
		t.Run(name, func(t *testing.T) {
			handler, users, _ := newAuthHandler(t)
			body := `{"name":"carol","email":"carol@example.com","password":"pw","role":"employer","skills":` + skills + `}`
			rec := httptest.NewRecorder()
			handler.RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

			user, err := users.GetUserByEmail(context.Background(), "carol@example.com")
			require.NoError(t, err)
			assert.Equal(t, models.RoleEmployer, user.Role)
			assert.Equal(t, []string{"go", "sql"}, []string(user.Skills))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, _, _ := newAuthHandler(t)
	rec := httptest.NewRecorder()
	handler.RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"dave","email":"dave@example.com","password":"pw"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.LoginHandler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"dave@example.com","password":"nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")

	rec = httptest.NewRecorder()
	handler.LoginHandler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	handler.LoginHandler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"dave@example.com","password":"pw"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Result().Cookies())
	_, err := utils.ParseToken(rec.Result().Cookies()[0].Value, "secret")
	assert.NoError(t, err)
}

func TestReadyzHandler(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	rec := httptest.NewRecorder()
	NewHealthHandler(map[string]Pinger{"database": ok}).ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ready"`)

	rec = httptest.NewRecorder()
	NewHealthHandler(map[string]Pinger{"database": ok, "redis": down}).ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "failed", resp.Checks["redis"].Status)
	assert.Equal(t, "ok", resp.Checks["database"].Status)
}

func TestDownloadResumeHandler(t *testing.T) {
	_, _, resumes := newAuthHandler(t)
	path, err := resumes.Save(context.Background(), storage.Upload{
		Filename:    "cv.doc",
		ContentType: "application/msword",
		Size:        3,
		Body:        strings.NewReader("doc"),
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/uploads/resumes/{name}", NewResumeHandler(resumes).DownloadResumeHandler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doc", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/resumes/missing.pdf", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList("  "))
	assert.Equal(t, []string{"a", "b"}, splitList("a,, b ,"))
}
