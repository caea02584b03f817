package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"members-only/config"
	"members-only/models"
)

type fakeUserRepo struct {
	nextID uint
	users  map[uint]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func testConfig() config.Config {
	return config.Config{
		SessionSecret:  "test-secret",
		SessionTTL:     time.Hour,
		MemberPassword: "squirrel",
		AdminPassword:  "overlord",
	}
}

func TestSignUpHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)

	user, err := svc.SignUp(models.SignUpForm{
		FirstName: "A", LastName: "B", Username: "ab",
		Password: "p", ConfirmPassword: "p",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "p", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("p")))
}

func TestSignUpSecretDerivesFlags(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		isMember bool
		isAdmin  bool
	}{
		{"no secret", "", false, false},
		{"wrong secret", "guess", false, false},
		{"member secret", "squirrel", true, false},
		{"admin secret", "overlord", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewAuthService(testConfig(), repo)

			user, err := svc.SignUp(models.SignUpForm{
				FirstName: "A", LastName: "B", Username: "ab",
				Password: "p", ConfirmPassword: "p",
				MemberPassword: tt.secret,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.isMember, user.IsMember)
			assert.Equal(t, tt.isAdmin, user.IsAdmin)
		})
	}
}

func TestSignUpEmptyConfiguredSecretsGrantNothing(t *testing.T) {
	repo := newFakeUserRepo()
	cfg := testConfig()
	cfg.MemberPassword = ""
	cfg.AdminPassword = ""
	svc := NewAuthService(cfg, repo)

	user, err := svc.SignUp(models.SignUpForm{
		FirstName: "A", LastName: "B", Username: "ab",
		Password: "p", ConfirmPassword: "p", MemberPassword: "",
	})
	require.NoError(t, err)
	assert.False(t, user.IsMember)
	assert.False(t, user.IsAdmin)
}

func TestSignUpDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)

	_, err := svc.SignUp(models.SignUpForm{
		FirstName: "A", LastName: "B", Username: "ab",
		Password: "p", ConfirmPassword: "p",
	})
	require.NoError(t, err)

	_, err = svc.SignUp(models.SignUpForm{
		FirstName: "C", LastName: "D", Username: "ab",
		Password: "q", ConfirmPassword: "q",
	})
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
	assert.Len(t, repo.users, 1)
}

func TestLogIn(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)

	_, err := svc.SignUp(models.SignUpForm{
		FirstName: "A", LastName: "B", Username: "ab",
		Password: "p", ConfirmPassword: "p",
	})
	require.NoError(t, err)

	user, token, err := svc.LogIn(models.LogInForm{Username: "ab", Password: "p"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ab", user.Username)

	_, _, err = svc.LogIn(models.LogInForm{Username: "ab", Password: "wrong"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, _, err = svc.LogIn(models.LogInForm{Username: "nobody", Password: "p"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestBecomeMember(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)

	user, err := svc.SignUp(models.SignUpForm{
		FirstName: "A", LastName: "B", Username: "ab",
		Password: "p", ConfirmPassword: "p",
	})
	require.NoError(t, err)
	require.False(t, user.IsMember)

	upgraded, err := svc.BecomeMember(user, "wrong")
	require.NoError(t, err)
	assert.False(t, upgraded)

	upgraded, err = svc.BecomeMember(user, "squirrel")
	require.NoError(t, err)
	assert.True(t, upgraded)

	stored, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsMember)
	assert.False(t, stored.IsAdmin)
}
