package config

import (
	"errors"
	"strings"
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("APPCHECK_HOST", "db")
	t.Setenv("APPCHECK_PORT", "5432")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"braced", "${APPCHECK_HOST}:${APPCHECK_PORT}", "db:5432"},
		{"bare dollar left alone", "pa$word", "pa$word"},
		{"escaped dollar", "$${APPCHECK_HOST}", "${APPCHECK_HOST}"},
		{"escape then reference", "$$${APPCHECK_HOST}", "$db"},
		{"no references", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandEnv(tt.in)
			if err != nil {
				t.Fatalf("ExpandEnv() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandEnv_EmptyValueIsSet(t *testing.T) {
	t.Setenv("APPCHECK_EMPTY", "")

	got, err := ExpandEnv("[${APPCHECK_EMPTY}]")
	if err != nil {
		t.Fatalf("ExpandEnv() error = %v", err)
	}
	if got != "[]" {
		t.Errorf("ExpandEnv() = %q, want []", got)
	}
}

func TestExpandEnv_MissingVariables(t *testing.T) {
	t.Setenv("APPCHECK_PRESENT", "ok")

	_, err := ExpandEnv("${APPCHECK_PRESENT} ${APPCHECK_MISSING_B} ${APPCHECK_MISSING_A} ${APPCHECK_MISSING_B}")
	if !errors.Is(err, ErrMissingEnv) {
		t.Fatalf("ExpandEnv() err = %v, want ErrMissingEnv", err)
	}
	if !strings.HasSuffix(err.Error(), "APPCHECK_MISSING_A, APPCHECK_MISSING_B") {
		t.Errorf("error = %q, want sorted unique names", err.Error())
	}
}
