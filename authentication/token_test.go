package authentication_test

import (
	"testing"

	"github.com/google/uuid"

	"clinic-connect/authentication"
	"clinic-connect/models"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := authentication.GenerateToken(userID, models.RoleDoctor)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := authentication.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != models.RoleDoctor {
		t.Errorf("Role = %q, want Doctor", claims.Role)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := authentication.ParseToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
