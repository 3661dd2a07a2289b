package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		paramName string
		wantErr   bool
	}{
		{
			name:      "valid string",
			str:       "test",
			paramName: "param",
			wantErr:   false,
		},
		{
			name:      "empty string",
			str:       "",
			paramName: "param",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			str:       "   ",
			paramName: "param",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.paramName) {
				t.Errorf("error %q does not name parameter %q", err, tt.paramName)
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		key     string
	}{
		{name: "dotted", key: "theme.dark"},
		{name: "underscore and dash", key: "language_ru-2"},
		{name: "empty", key: "", wantErr: ErrEmptyString},
		{name: "uppercase", key: "Theme.Dark", wantErr: ErrInvalidKey},
		{name: "space", key: "theme dark", wantErr: ErrInvalidKey},
		{name: "quote", key: "theme'--", wantErr: ErrInvalidKey},
		{name: "too long", key: strings.Repeat("k", maxKeyLength+1), wantErr: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKey(tt.key)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateKey(%q) unexpected error: %v", tt.key, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateKey(%q) error = %v, want %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
