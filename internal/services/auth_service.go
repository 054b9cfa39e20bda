package services

import (
	"context"
	"strings"
	"time"

	"hirehub/internal/apperr"
	"hirehub/internal/models"
	"hirehub/internal/repositories"
	"hirehub/internal/session"
	"hirehub/internal/storage"
	"hirehub/internal/utils"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService manages accounts and session tokens.
type AuthService struct {
	users     *repositories.UserRepository
	resumes   ResumeSaver
	revoker   session.Revoker
	jwtSecret string
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(users *repositories.UserRepository, resumes ResumeSaver, revoker session.Revoker, jwtSecret string, logger *zap.Logger) *AuthService {
	if revoker == nil {
		revoker = session.NopRevoker{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, resumes: resumes, revoker: revoker, jwtSecret: jwtSecret, logger: logger, now: time.Now}
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	Skills         []string
	Experience     string
	CompanyName    string
	CompanyDetails string
	Resume         *storage.Upload
}

type ProfileInput struct {
	Name           string
	Email          string
	Password       string
	Skills         []string
	Experience     string
	CompanyName    string
	CompanyDetails string
	Resume         string
}

// AuthResult is a user together with a freshly issued session token.
type AuthResult struct {
	User    *models.User
	Token   string
	Session utils.Session
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("Name, email and password are required")
	}
	if in.Resume != nil {
		if err := storage.Validate(*in.Resume); err != nil {
			return nil, err
		}
	}

	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, apperr.Conflict("User already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, dbErr(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err, "failed to hash password")
	}

	user := &models.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Role:           models.ParseRole(in.Role),
		Skills:         in.Skills,
		Experience:     in.Experience,
		CompanyName:    in.CompanyName,
		CompanyDetails: in.CompanyDetails,
	}
	if in.Resume != nil {
		path, err := s.resumes.Save(ctx, *in.Resume)
		if err != nil {
			return nil, err
		}
		user.Resume = path
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if user.Resume != "" {
			discardResume(ctx, s.resumes, user.Resume, s.logger)
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, dbErr(err)
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}
	if err != nil {
		return nil, dbErr(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}
	return s.issue(user)
}

func (s *AuthService) Profile(ctx context.Context, caller models.Caller) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, caller.ID)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	return user, nil
}

// UpdateProfile overwrites the non-empty fields of in and re-issues the
// session token.
func (s *AuthService) UpdateProfile(ctx context.Context, caller models.Caller, in ProfileInput) (*AuthResult, error) {
	user, err := s.users.GetUserByID(ctx, caller.ID)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}

	if email := strings.TrimSpace(in.Email); email != "" && !strings.EqualFold(email, user.Email) {
		existing, err := s.users.GetUserByEmail(ctx, email)
		if err == nil && existing.ID != user.ID {
			return nil, apperr.Conflict("Email already in use")
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, dbErr(err)
		}
		user.Email = email
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Skills != nil {
		user.Skills = in.Skills
	}
	if in.Experience != "" {
		user.Experience = in.Experience
	}
	if in.CompanyName != "" {
		user.CompanyName = in.CompanyName
	}
	if in.CompanyDetails != "" {
		user.CompanyDetails = in.CompanyDetails
	}
	if in.Resume != "" {
		user.Resume = in.Resume
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal(err, "failed to hash password")
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Conflict("Email already in use")
		}
		return nil, dbErr(err)
	}
	return s.issue(user)
}

// Logout deny-lists the session until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, sess utils.Session) error {
	if err := s.revoker.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return apperr.Internal(err, "failed to revoke session")
	}
	return nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, sess, err := utils.IssueToken(s.jwtSecret, user.ID, user.Role, s.now())
	if err != nil {
		return nil, apperr.Internal(err, "failed to sign token")
	}
	return &AuthResult{User: user, Token: token, Session: sess}, nil
}
