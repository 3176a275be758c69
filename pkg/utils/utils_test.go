package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateResetToken(t *testing.T) {
	a := GenerateResetToken()
	b := GenerateResetToken()

	if len(a) != 64 {
		t.Fatalf("token length = %d, want 64", len(a))
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if a == b {
		t.Fatal("two tokens should not collide")
	}
}

func TestClampPercentage(t *testing.T) {
	cases := []struct{ in, want int }{
		{-10, 0},
		{0, 0},
		{75, 75},
		{100, 100},
		{150, 100},
	}
	for _, tc := range cases {
		if got := ClampPercentage(tc.in); got != tc.want {
			t.Errorf("ClampPercentage(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
