package controller

import (
	"errors"
	"testing"
)

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !errors.Is(err, target) {
		t.Errorf("expected error %v, got %v", target, err)
	}
}
