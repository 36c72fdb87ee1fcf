package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("BUBBLES_TEST_SET", "value")
	t.Setenv("BUBBLES_TEST_EMPTY", "")

	tests := []struct {
		key  string
		want string
	}{
		{"BUBBLES_TEST_SET", "value"},
		{"BUBBLES_TEST_EMPTY", ""},
		{"BUBBLES_TEST_UNSET", "fallback"},
	}

	for _, tt := range tests {
		if got := GetEnv(tt.key, "fallback"); got != tt.want {
			t.Errorf("GetEnv(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("BUBBLES_TEST_INT", "120")
	t.Setenv("BUBBLES_TEST_BAD", "twelve")

	tests := []struct {
		key  string
		want int
	}{
		{"BUBBLES_TEST_INT", 120},
		{"BUBBLES_TEST_BAD", 7},
		{"BUBBLES_TEST_UNSET", 7},
	}

	for _, tt := range tests {
		if got := GetEnvInt(tt.key, 7); got != tt.want {
			t.Errorf("GetEnvInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}
