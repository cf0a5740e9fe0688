package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinic-connect/models"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const resetTokenTTL = 15 * time.Minute

// AccountService manages identity accounts: registration, login and the
// password-reset flow. Reset tokens live in a TTL store.
type AccountService struct {
	db     *gorm.DB
	tokens ResetTokenStore
	email  Mailer
}

func NewAccountService(db *gorm.DB, tokens ResetTokenStore, email Mailer) *AccountService {
	return &AccountService{db: db, tokens: tokens, email: email}
}

func (s *AccountService) Register(req *models.RegisterRequest) (*models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(req.UserName, req.Email, string(hash), role)
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CreateDoctorAccount creates the identity account backing a new doctor with
// a generated password, which is returned so the admin can hand it over.
func (s *AccountService) CreateDoctorAccount(personName, email string) (*models.User, string, error) {
	if err := s.checkEmailFree(email); err != nil {
		return nil, "", err
	}

	password := "Doc@" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.NewUser(personName, email, string(hash), models.RoleDoctor)
	if err := s.db.Create(user).Error; err != nil {
		return nil, "", err
	}
	return user, password, nil
}

// ForgotPassword stores a one-time reset token and mails the reset link. An
// unknown email is treated as success so the endpoint does not reveal which
// accounts exist.
func (s *AccountService) ForgotPassword(ctx context.Context, email, resetURL string) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token := uuid.New().String()
	if err := s.tokens.Set(ctx, token, user.ID.String(), resetTokenTTL); err != nil {
		return err
	}

	link := fmt.Sprintf("%s?user_id=%s&token=%s", resetURL, user.ID, token)
	body := fmt.Sprintf("Click the link below to reset your password:\n\n%s\n\nThis link expires in 15 minutes.", link)
	return s.email.Send(user.Email, "Reset Your Password", body)
}

// ResetPassword exchanges a valid token for a password change and consumes
// the token, so a reset link works exactly once.
func (s *AccountService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	storedUserID, err := s.tokens.Get(ctx, req.Token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if storedUserID != req.UserID {
		return ErrInvalidResetToken
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	if err := s.tokens.Del(ctx, req.Token); err != nil {
		return err
	}
	return nil
}

func (s *AccountService) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SeedAdmin creates the default admin account if no admin exists yet.
func (s *AccountService) SeedAdmin() error {
	var existing models.User
	err := s.db.First(&existing, "role = ?", models.RoleAdmin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.NewUser("System Admin", "admin@clinic.com", string(hash), models.RoleAdmin)
	return s.db.Create(admin).Error
}

func (s *AccountService) checkEmailFree(email string) error {
	var existing models.User
	err := s.db.First(&existing, "email = ?", email).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
