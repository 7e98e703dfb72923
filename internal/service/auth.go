package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// ErrBadCredentials covers both an unknown email and a wrong password, so a
// login attempt never learns which one it was.
var ErrBadCredentials = errors.New("invalid email or password")

// AuthService handles registration, login and profile management.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, ttlHours int) *AuthService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		tokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// Register creates a new user. Email is unique, case-insensitive.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, invalid("name", "name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, invalid("email", "invalid email address")
	}
	if len(password) < 8 || len(password) > 64 {
		return nil, invalid("password", "password must be 8-64 characters")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and returns the user plus a signed JWT.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(email)

	var user models.User
	if err := s.db.Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrBadCredentials
	}

	token, err := util.GenerateToken(s.jwtSecret, user.ID, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return &user, token, nil
}

// Profile returns the user's profile row.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes display name and phone.
func (s *AuthService) UpdateProfile(userID uint, name, phone string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "name is required")
	}

	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Phone = strings.TrimSpace(phone)
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	if len(next) < 8 || len(next) > 64 {
		return invalid("newPassword", "password must be 8-64 characters")
	}

	user, err := s.Profile(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	return s.db.Save(user).Error
}

// SetProfilePicture stores the picture path on the user row.
func (s *AuthService) SetProfilePicture(userID uint, path string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}
	user.ProfilePicture = path
	return s.db.Save(user).Error
}
