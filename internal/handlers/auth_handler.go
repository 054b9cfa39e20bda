package handlers

import (
	"encoding/json"
	"net/http"

	"hirehub/internal/middleware"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/utils"
)

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	service       *services.AuthService
	secureCookies bool
}

func NewAuthHandler(service *services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookies: secureCookies}
}

// skills arrive either as a JSON array or, from forms, as "a, b, c"
type skillList []string

func (s *skillList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*s = splitList(joined)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

type registerRequest struct {
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"password"`
	Role           string    `json:"role"`
	Skills         skillList `json:"skills"`
	Experience     string    `json:"experience"`
	CompanyName    string    `json:"companyName"`
	CompanyDetails string    `json:"companyDetails"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"password"`
	Skills         skillList `json:"skills"`
	Experience     string    `json:"experience"`
	CompanyName    string    `json:"companyName"`
	CompanyDetails string    `json:"companyDetails"`
	Resume         string    `json:"resume"`
}

type authResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func (handler *AuthHandler) respond(writer http.ResponseWriter, status int, result *services.AuthResult) {
	utils.SetSessionCookie(writer, result.Token, result.Session.ExpiresAt, handler.secureCookies)
	utils.JSON(writer, status, authResponse{
		ID:    result.User.ID,
		Name:  result.User.Name,
		Email: result.User.Email,
		Role:  result.User.Role,
	})
}

// RegisterHandler accepts JSON or a multipart form with an optional resume file.
func (handler *AuthHandler) RegisterHandler(writer http.ResponseWriter, request *http.Request) {
	var in services.RegisterInput
	if isMultipart(request) {
		upload, err := parseMultipart(writer, request, "resume")
		if err != nil {
			utils.WriteError(writer, request, err)
			return
		}
		form := request.MultipartForm.Value
		in = services.RegisterInput{
			Name:           first(form["name"]),
			Email:          first(form["email"]),
			Password:       first(form["password"]),
			Role:           first(form["role"]),
			Skills:         splitList(first(form["skills"])),
			Experience:     first(form["experience"]),
			CompanyName:    first(form["companyName"]),
			CompanyDetails: first(form["companyDetails"]),
			Resume:         upload,
		}
	} else {
		var req registerRequest
		if err := decodeJSON(request, &req); err != nil {
			utils.WriteError(writer, request, err)
			return
		}
		in = services.RegisterInput{
			Name:           req.Name,
			Email:          req.Email,
			Password:       req.Password,
			Role:           req.Role,
			Skills:         req.Skills,
			Experience:     req.Experience,
			CompanyName:    req.CompanyName,
			CompanyDetails: req.CompanyDetails,
		}
	}

	result, err := handler.service.Register(request.Context(), in)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	handler.respond(writer, http.StatusCreated, result)
}

func (handler *AuthHandler) LoginHandler(writer http.ResponseWriter, request *http.Request) {
	var req loginRequest
	if err := decodeJSON(request, &req); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	result, err := handler.service.Login(request.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	handler.respond(writer, http.StatusOK, result)
}

func (handler *AuthHandler) ProfileHandler(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.service.Profile(request.Context(), callerOf(request))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, user)
}

func (handler *AuthHandler) UpdateProfileHandler(writer http.ResponseWriter, request *http.Request) {
	var req profileRequest
	if err := decodeJSON(request, &req); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	result, err := handler.service.UpdateProfile(request.Context(), callerOf(request), services.ProfileInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Skills:         req.Skills,
		Experience:     req.Experience,
		CompanyName:    req.CompanyName,
		CompanyDetails: req.CompanyDetails,
		Resume:         req.Resume,
	})
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	handler.respond(writer, http.StatusOK, result)
}

// LogoutHandler always clears the cookie; a valid token is also revoked.
func (handler *AuthHandler) LogoutHandler(writer http.ResponseWriter, request *http.Request) {
	if sess, ok := middleware.SessionFrom(request.Context()); ok {
		if err := handler.service.Logout(request.Context(), sess); err != nil {
			utils.WriteError(writer, request, err)
			return
		}
	}
	utils.ClearSessionCookie(writer, handler.secureCookies)
	utils.JSON(writer, http.StatusOK, models.MessageResponse{Message: "Logged out successfully"})
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
