package database

import (
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name: "postgres DSN includes all parts",
			cfg: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432",
				User: "trips", Password: "pw", Name: "tripplanner", SSLMode: "disable",
			},
			expected: "host=db user=trips password=pw dbname=tripplanner port=5432 sslmode=disable",
		},
		{
			name:     "sqlite DSN is the path",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "test.sqlite"},
			expected: "test.sqlite",
		},
		{
			name:     "empty driver falls back to sqlite path",
			cfg:      DatabaseConfig{Path: "fallback.sqlite"},
			expected: "fallback.sqlite",
		},
		{
			name:     "unknown driver yields empty DSN",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DSN(); got != tt.expected {
				t.Errorf("DSN() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", User: "trips", Password: "super-secret"}

	s := cfg.String()

	if strings.Contains(s, "super-secret") {
		t.Errorf("String() leaked the password: %s", s)
	}
	if !strings.Contains(s, "[REDACTED]") {
		t.Errorf("String() should mask the password: %s", s)
	}
}
