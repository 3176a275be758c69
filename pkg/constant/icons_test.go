package constant

import "testing"

func TestResolveIcon_KnownKey(t *testing.T) {
	if got := ResolveIcon("web"); got != "bx bx-globe" {
		t.Fatalf("ResolveIcon(web) = %q", got)
	}
}

func TestResolveIcon_FallsBack(t *testing.T) {
	for _, key := range []string{"", "nope", "WEB"} {
		if got := ResolveIcon(key); got != IconDefault {
			t.Fatalf("ResolveIcon(%q) = %q, want default", key, got)
		}
	}
}
