package validators_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/validators"
	"github.com/labstack/echo/v4"
)

func TestValidate(t *testing.T) {
	v := validators.NewValidator()

	tests := []struct {
		name     string
		input    interface{}
		wantErr  bool
		contains []string
	}{
		{
			name: "complete donation",
			input: &models.DonateRequest{
				MedicineName: "Aspirin", ExpiryDate: "2030-01-01", Address: "a",
				Phone: "1", Photo: "p", Description: "d",
			},
		},
		{
			name:     "missing donation fields use json names",
			input:    &models.DonateRequest{MedicineName: "Aspirin"},
			wantErr:  true,
			contains: []string{"exp_date is required", "description is required"},
		},
		{
			name:     "bad email",
			input:    &models.SignupRequest{Name: "Dana", Email: "nope", Password: "password123"},
			wantErr:  true,
			contains: []string{"email must be a valid email"},
		},
		{
			name:     "rating above range",
			input:    &models.CreateFeedbackRequest{RatedUserID: 1, Rating: 6},
			wantErr:  true,
			contains: []string{"rating must be at most 5"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Fatalf("want 400 HTTPError, got %#v", err)
			}
			msg, _ := he.Message.(string)
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q should contain %q", msg, want)
				}
			}
		})
	}
}
