package services

import (
	"errors"
	"time"

	"members-only/config"
	"members-only/models"
	"members-only/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	SignUp(form models.SignUpForm) (*models.User, error)
	LogIn(form models.LogInForm) (*models.User, string, error)
	BecomeMember(user *models.User, secret string) (bool, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	cfg      config.Config
	userRepo repositories.UserRepository
}

func NewAuthService(cfg config.Config, userRepo repositories.UserRepository) AuthService {
	return &authService{cfg: cfg, userRepo: userRepo}
}

func (s *authService) SignUp(form models.SignUpForm) (*models.User, error) {
	// Check if the username is already taken. This is a read-then-write with
	// no store-level constraint behind it, so two concurrent sign-ups can
	// still race past it.
	existingUser, err := s.userRepo.GetByUsername(form.Username)
	if err == nil && existingUser != nil {
		return nil, models.ErrorConflict{Message: "That username is already taken."}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// The admin secret grants both flags, the member secret membership only.
	isAdmin := s.cfg.AdminPassword != "" && form.MemberPassword == s.cfg.AdminPassword
	isMember := isAdmin || (s.cfg.MemberPassword != "" && form.MemberPassword == s.cfg.MemberPassword)

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Password:  string(hashedPassword),
		IsMember:  isMember,
		IsAdmin:   isAdmin,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) LogIn(form models.LogInForm) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(form.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, "", err
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		return nil, "", models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) BecomeMember(user *models.User, secret string) (bool, error) {
	if s.cfg.MemberPassword == "" || secret != s.cfg.MemberPassword {
		return false, nil
	}

	user.IsMember = true
	if err := s.userRepo.Update(user); err != nil {
		return false, err
	}

	return true, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(s.cfg.SessionTTL).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
