package utils

import (
	"testing"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "plain address", email: "barista@cafe.example.com", wantErr: false},
		{name: "with plus tag", email: "owner+books@cafe.example.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "missing domain", email: "barista@", wantErr: true},
		{name: "missing at sign", email: "barista.cafe.example.com", wantErr: true},
		{name: "missing tld", email: "barista@cafe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "simple", username: "barista_1", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "spaces rejected", username: "head barista", wantErr: true},
		{name: "punctuation rejected", username: "barista!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		minLength int
		wantErr   bool
	}{
		{name: "meets policy", password: "Espresso1", minLength: 8, wantErr: false},
		{name: "empty", password: "", minLength: 8, wantErr: true},
		{name: "below minimum length", password: "Esp1", minLength: 8, wantErr: true},
		{name: "no uppercase", password: "espresso1", minLength: 8, wantErr: true},
		{name: "no lowercase", password: "ESPRESSO1", minLength: 8, wantErr: true},
		{name: "no digit", password: "Espressoo", minLength: 8, wantErr: true},
		{name: "shorter minimum honored", password: "Esp1no", minLength: 6, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.minLength)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
