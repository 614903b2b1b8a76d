package util

import (
	"testing"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("STANDOFF_TEST_STR", "value")

	if got := GetEnvString("STANDOFF_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnvString() = %q, want value", got)
	}
	if got := GetEnvString("STANDOFF_TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString() = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("STANDOFF_TEST_INT", "12")
	t.Setenv("STANDOFF_TEST_INT_BAD", "twelve")

	if got := GetEnvInt("STANDOFF_TEST_INT", 4); got != 12 {
		t.Errorf("GetEnvInt() = %d, want 12", got)
	}
	if got := GetEnvInt("STANDOFF_TEST_INT_BAD", 4); got != 4 {
		t.Errorf("GetEnvInt() = %d, want the default on malformed input", got)
	}
	if got := GetEnvInt("STANDOFF_TEST_INT_MISSING", 4); got != 4 {
		t.Errorf("GetEnvInt() = %d, want 4", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("STANDOFF_TEST_BOOL", "true")
	t.Setenv("STANDOFF_TEST_BOOL_BAD", "yep")

	if got := GetEnvBool("STANDOFF_TEST_BOOL", false); got != true {
		t.Errorf("GetEnvBool() = %v, want true", got)
	}
	if got := GetEnvBool("STANDOFF_TEST_BOOL_BAD", false); got != false {
		t.Errorf("GetEnvBool() = %v, want the default on malformed input", got)
	}
}
