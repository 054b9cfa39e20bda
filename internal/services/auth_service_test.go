package services

import (
	"context"
	"testing"
	"time"

	"hirehub/internal/apperr"
	"hirehub/internal/models"
	"hirehub/internal/session"
	"hirehub/internal/testhelpers"
	"hirehub/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRevoker struct {
	revoked map[string]time.Time
}

func (r *recordingRevoker) Revoke(_ context.Context, id string, exp time.Time) error {
	if r.revoked == nil {
		r.revoked = map[string]time.Time{}
	}
	r.revoked[id] = exp
	return nil
}

func (r *recordingRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := r.revoked[id]
	return ok, nil
}

func newAuth(f *fixture, rev session.Revoker) *AuthService {
	s := NewAuthService(f.users, f.resumes, rev, "test-secret", nil)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestAuthService_Register(t *testing.T) {
	f := newFixture(t)
	s := newAuth(f, nil)
	ctx := context.Background()

	res, err := s.Register(ctx, RegisterInput{Name: "Carol", Email: "Carol@Example.com", Password: "pw123456", Role: "employer", CompanyName: "Initech"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployer, res.User.Role)
	assert.Equal(t, "carol@example.com", res.User.Email)
	assert.NotEqual(t, "pw123456", res.User.PasswordHash)

	sess, err := utils.ParseToken(res.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, sess.UserID)
	assert.Equal(t, models.RoleEmployer, sess.Role)

	t.Run("role defaults to candidate", func(t *testing.T) {
		res, err := s.Register(ctx, RegisterInput{Name: "Dan", Email: "dan@example.com", Password: "pw", Role: "admin"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleCandidate, res.User.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := s.Register(ctx, RegisterInput{Name: "Carol 2", Email: "carol@example.com", Password: "pw"})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(t, "User already exists", apperr.MessageOf(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := s.Register(ctx, RegisterInput{Name: "X", Email: "x@example.com"})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("resume upload stored", func(t *testing.T) {
		res, err := s.Register(ctx, RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "pw", Resume: pdfUpload()})
		require.NoError(t, err)
		assert.Equal(t, "uploads/resumes/1-cv.pdf", res.User.Resume)
	})

	t.Run("invalid upload rejected before anything is stored", func(t *testing.T) {
		before := len(f.resumes.uploads)
		_, err := s.Register(ctx, RegisterInput{Name: "Fay", Email: "fay@example.com", Password: "pw", Resume: pngUpload()})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Len(t, f.resumes.uploads, before)
		_, err = f.users.GetUserByEmail(ctx, "fay@example.com")
		assert.Error(t, err)
	})
}

func TestAuthService_RegisterRaceRemovesUpload(t *testing.T) {
	f := newFixture(t)
	s := newAuth(f, nil)

	f.resumes.onSave = func() { testhelpers.SeedUser(t, f.db, "zed", models.RoleCandidate) }

	_, err := s.Register(context.Background(), RegisterInput{Name: "Zed", Email: "zed@example.com", Password: "pw", Resume: pdfUpload()})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, []string{"uploads/resumes/1-cv.pdf"}, f.resumes.removed)
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	s := newAuth(f, nil)
	ctx := context.Background()
	_, err := s.Register(ctx, RegisterInput{Name: "Gus", Email: "gus@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	res, err := s.Login(ctx, "GUS@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Gus", res.User.Name)
	assert.Equal(t, fixedNow.Add(utils.TokenTTL), res.Session.ExpiresAt)

	for _, tc := range []struct{ email, password string }{
		{"gus@example.com", "wrong"},
		{"nobody@example.com", "correct-horse"},
	} {
		_, err := s.Login(ctx, tc.email, tc.password)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		assert.Equal(t, "Invalid email or password", apperr.MessageOf(err))
	}
}

func TestAuthService_Profile(t *testing.T) {
	f := newFixture(t)
	s := newAuth(f, nil)
	ctx := context.Background()

	user, err := s.Profile(ctx, callerOf(f.candidate))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)

	_, err = s.Profile(ctx, models.Caller{ID: "ghost", Role: models.RoleCandidate})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAuthService_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	s := newAuth(f, nil)
	ctx := context.Background()
	reg, err := s.Register(ctx, RegisterInput{Name: "Hal", Email: "hal@example.com", Password: "old-password"})
	require.NoError(t, err)
	caller := models.Caller{ID: reg.User.ID, Role: reg.User.Role}

	res, err := s.UpdateProfile(ctx, caller, ProfileInput{Experience: "3 years", Skills: []string{"go"}, Password: "new-password"})
	require.NoError(t, err)
	assert.Equal(t, "Hal", res.User.Name, "empty fields keep their value")
	assert.Equal(t, "3 years", res.User.Experience)
	assert.NotEmpty(t, res.Token)

	_, err = s.Login(ctx, "hal@example.com", "new-password")
	assert.NoError(t, err)
	_, err = s.Login(ctx, "hal@example.com", "old-password")
	assert.Error(t, err)

	_, err = s.UpdateProfile(ctx, caller, ProfileInput{Email: "alice@example.com"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	res, err = s.UpdateProfile(ctx, caller, ProfileInput{Email: "hal2@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "hal2@example.com", res.User.Email)
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)
	rev := &recordingRevoker{}
	s := newAuth(f, rev)
	exp := fixedNow.Add(time.Hour)

	require.NoError(t, s.Logout(context.Background(), utils.Session{TokenID: "jti-1", ExpiresAt: exp}))
	assert.Equal(t, exp, rev.revoked["jti-1"])
}
