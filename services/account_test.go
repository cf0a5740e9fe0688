package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"clinic-connect/models"
	"clinic-connect/services"
)

func newAccountService(t *testing.T) *services.AccountService {
	t.Helper()
	// the token store and mailer are only needed by the password-reset flow
	return services.NewAccountService(newTestDB(t), nil, nil)
}

// memoryTokenStore is an in-memory stand-in for the redis token store.
type memoryTokenStore struct {
	values map[string]string
	expiry map[string]time.Time
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{values: map[string]string{}, expiry: map[string]time.Time{}}
}

func (s *memoryTokenStore) Set(_ context.Context, token, userID string, ttl time.Duration) error {
	s.values[token] = userID
	s.expiry[token] = time.Now().Add(ttl)
	return nil
}

func (s *memoryTokenStore) Get(_ context.Context, token string) (string, error) {
	userID, ok := s.values[token]
	if !ok || time.Now().After(s.expiry[token]) {
		return "", errors.New("token not found")
	}
	return userID, nil
}

func (s *memoryTokenStore) Del(_ context.Context, token string) error {
	delete(s.values, token)
	delete(s.expiry, token)
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type recordingMailer struct {
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *recordingMailer) SendWithAttachment(to, subject, body, _ string, _ []byte) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newResetTestService(t *testing.T) (*services.AccountService, *memoryTokenStore, *recordingMailer) {
	t.Helper()
	store := newMemoryTokenStore()
	mailer := &recordingMailer{}
	return services.NewAccountService(newTestDB(t), store, mailer), store, mailer
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newAccountService(t)

	user, err := svc.Register(&models.RegisterRequest{
		UserName: "John",
		Role:     "Patient",
		Email:    "john@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RolePatient {
		t.Errorf("Role = %q, want Patient", user.Role)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}

	authed, err := svc.Authenticate("john@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("authenticated user %s, want %s", authed.ID, user.ID)
	}

	if _, err := svc.Authenticate("john@example.com", "wrong"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "secret123"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAccountService(t)

	req := &models.RegisterRequest{
		UserName: "John",
		Role:     "Patient",
		Email:    "john@example.com",
		Password: "secret123",
	}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Register(&models.RegisterRequest{
		UserName: "John",
		Role:     "Superuser",
		Email:    "john@example.com",
		Password: "secret123",
	})
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestCreateDoctorAccount(t *testing.T) {
	svc := newAccountService(t)

	user, password, err := svc.CreateDoctorAccount("Dr. Grey", "grey@clinic.com")
	if err != nil {
		t.Fatalf("CreateDoctorAccount: %v", err)
	}
	if user.Role != models.RoleDoctor {
		t.Errorf("Role = %q, want Doctor", user.Role)
	}
	if !strings.HasPrefix(password, "Doc@") || len(password) != len("Doc@")+8 {
		t.Errorf("generated password %q has unexpected shape", password)
	}

	if _, err := svc.Authenticate("grey@clinic.com", password); err != nil {
		t.Fatalf("Authenticate with generated password: %v", err)
	}
}

func TestForgotPasswordStoresTokenAndMailsLink(t *testing.T) {
	svc, store, mailer := newResetTestService(t)

	user, err := svc.Register(&models.RegisterRequest{
		UserName: "John",
		Role:     "Patient",
		Email:    "john@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ForgotPassword(context.Background(), "john@example.com", "https://clinic.test/account/reset-password"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	if len(store.values) != 1 {
		t.Fatalf("stored tokens = %d, want 1", len(store.values))
	}
	var token string
	for tok := range store.values {
		token = tok
	}
	if store.values[token] != user.ID.String() {
		t.Errorf("token maps to %q, want %s", store.values[token], user.ID)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent mails = %d, want 1", len(mailer.sent))
	}
	mail := mailer.sent[0]
	if mail.to != "john@example.com" {
		t.Errorf("mail to %q, want john@example.com", mail.to)
	}
	if !strings.Contains(mail.body, token) {
		t.Error("mail body does not contain the reset token")
	}
	if !strings.Contains(mail.body, "https://clinic.test/account/reset-password") {
		t.Error("mail body does not contain the reset link")
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, store, mailer := newResetTestService(t)

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com", "https://clinic.test/account/reset-password"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(store.values) != 0 {
		t.Errorf("stored tokens = %d, want 0", len(store.values))
	}
	if len(mailer.sent) != 0 {
		t.Errorf("sent mails = %d, want 0", len(mailer.sent))
	}
}

func TestResetPasswordConsumesToken(t *testing.T) {
	svc, store, _ := newResetTestService(t)
	ctx := context.Background()

	user, err := svc.Register(&models.RegisterRequest{
		UserName: "John",
		Role:     "Patient",
		Email:    "john@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := store.Set(ctx, "tok", user.ID.String(), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	req := &models.ResetPasswordRequest{
		UserID:          user.ID.String(),
		Token:           "tok",
		NewPassword:     "newpass456",
		ConfirmPassword: "newpass456",
	}
	if err := svc.ResetPassword(ctx, req); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := svc.Authenticate("john@example.com", "newpass456"); err != nil {
		t.Fatalf("Authenticate with new password: %v", err)
	}
	if _, err := svc.Authenticate("john@example.com", "secret123"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("old password err = %v, want ErrInvalidCredentials", err)
	}

	// the token is single-use
	if err := svc.ResetPassword(ctx, req); !errors.Is(err, services.ErrInvalidResetToken) {
		t.Fatalf("second reset err = %v, want ErrInvalidResetToken", err)
	}
}

func TestResetPasswordUnknownToken(t *testing.T) {
	svc, _, _ := newResetTestService(t)

	err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		UserID:          uuid.New().String(),
		Token:           uuid.New().String(),
		NewPassword:     "newpass456",
		ConfirmPassword: "newpass456",
	})
	if !errors.Is(err, services.ErrInvalidResetToken) {
		t.Fatalf("err = %v, want ErrInvalidResetToken", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, store, _ := newResetTestService(t)
	ctx := context.Background()

	user, err := svc.Register(&models.RegisterRequest{
		UserName: "John",
		Role:     "Patient",
		Email:    "john@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := store.Set(ctx, "tok", user.ID.String(), -time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	err = svc.ResetPassword(ctx, &models.ResetPasswordRequest{
		UserID:          user.ID.String(),
		Token:           "tok",
		NewPassword:     "newpass456",
		ConfirmPassword: "newpass456",
	})
	if !errors.Is(err, services.ErrInvalidResetToken) {
		t.Fatalf("err = %v, want ErrInvalidResetToken", err)
	}
}

func TestResetPasswordUserMismatch(t *testing.T) {
	svc, store, _ := newResetTestService(t)
	ctx := context.Background()

	user, err := svc.Register(&models.RegisterRequest{
		UserName: "John",
		Role:     "Patient",
		Email:    "john@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := store.Set(ctx, "tok", user.ID.String(), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	err = svc.ResetPassword(ctx, &models.ResetPasswordRequest{
		UserID:          uuid.New().String(),
		Token:           "tok",
		NewPassword:     "newpass456",
		ConfirmPassword: "newpass456",
	})
	if !errors.Is(err, services.ErrInvalidResetToken) {
		t.Fatalf("err = %v, want ErrInvalidResetToken", err)
	}

	// the password is untouched on a mismatch
	if _, err := svc.Authenticate("john@example.com", "secret123"); err != nil {
		t.Fatalf("Authenticate with original password: %v", err)
	}
}

func TestSeedAdminIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAccountService(db, nil, nil)

	if err := svc.SeedAdmin(); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}
	if err := svc.SeedAdmin(); err != nil {
		t.Fatalf("second SeedAdmin: %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		t.Fatalf("count admins: %v", err)
	}
	if count != 1 {
		t.Errorf("admin count = %d, want 1", count)
	}

	if _, err := svc.Authenticate("admin@clinic.com", "Admin@123"); err != nil {
		t.Fatalf("Authenticate seeded admin: %v", err)
	}
}
