package identity

import (
	"errors"
	"testing"

	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

func TestResolve_TableTests(t *testing.T) {
	users := []*models.User{
		{ID: "u1", Mobile: "9876543210", Email: "user@gmail.com"},
		{ID: "u2", Mobile: "8765432109", Email: "second@yandex.ru"},
	}

	tests := []struct {
		name    string
		mobile  string
		email   string
		wantID  string
		wantErr bool
	}{
		{
			name:   "exact match",
			mobile: "9876543210",
			email:  "user@gmail.com",
			wantID: "u1",
		},
		{
			name:   "email is case insensitive",
			mobile: "9876543210",
			email:  "User@Gmail.com",
			wantID: "u1",
		},
		{
			name:   "whitespace is trimmed",
			mobile: "  8765432109 ",
			email:  " second@yandex.ru\n",
			wantID: "u2",
		},
		{
			name:    "mobile is matched exactly",
			mobile:  "987654321",
			email:   "user@gmail.com",
			wantErr: true,
		},
		{
			name:    "wrong email",
			mobile:  "9876543210",
			email:   "other@gmail.com",
			wantErr: true,
		},
		{
			name:    "empty roster",
			mobile:  "9876543210",
			email:   "user@gmail.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := users
			if tt.name == "empty roster" {
				roster = nil
			}
			got, err := Resolve(tt.mobile, tt.email, roster)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("Resolve(%q, %q) err = %v, want ErrNotFound", tt.mobile, tt.email, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q, %q) unexpected error: %v", tt.mobile, tt.email, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("Resolve(%q, %q) = %s, want %s", tt.mobile, tt.email, got.ID, tt.wantID)
			}
		})
	}
}

func TestResolve_DuplicatesReturnFirst(t *testing.T) {
	// Поврежденное хранилище с дубликатом номера: ошибки нет, берется первая запись.
	users := []*models.User{
		{ID: "first", Mobile: "9876543210", Email: "user@gmail.com"},
		{ID: "second", Mobile: "9876543210", Email: "user@gmail.com"},
	}

	got, err := Resolve("9876543210", "user@gmail.com", users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "first" {
		t.Errorf("Resolve returned %s, want first", got.ID)
	}
}
