package auth

import "testing"

func TestAuthorizeOwner(t *testing.T) {
	gate := NewGate("owner", "support")

	if got := gate.Authorize(TierOwner, "owner", nil, true); !got.Allowed {
		t.Fatalf("expected owner allowed, got %+v", got)
	}
	if got := gate.Authorize(TierOwner, "someone", []string{"support"}, true); got.Allowed {
		t.Fatal("expected non-owner denied")
	}
	// Owner tier applies in DMs too.
	if got := gate.Authorize(TierOwner, "someone", nil, false); got.Allowed {
		t.Fatal("expected non-owner denied in DM")
	}
}

func TestAuthorizeSupport(t *testing.T) {
	gate := NewGate("owner", "support")

	cases := []struct {
		name    string
		roles   []string
		inGuild bool
		allowed bool
	}{
		{"has role in guild", []string{"a", "support"}, true, true},
		{"missing role in guild", []string{"a", "b"}, true, false},
		{"no roles in guild", nil, true, false},
		{"dm bypasses tier", nil, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gate.Authorize(TierSupport, "user", tc.roles, tc.inGuild)
			if got.Allowed != tc.allowed {
				t.Fatalf("expected allowed=%t, got %+v", tc.allowed, got)
			}
			if !got.Allowed && got.Reason == "" {
				t.Fatal("expected deny reason")
			}
		})
	}
}

func TestAuthorizePublic(t *testing.T) {
	gate := NewGate("owner", "support")
	if got := gate.Authorize(TierPublic, "anyone", nil, true); !got.Allowed {
		t.Fatalf("expected public allowed, got %+v", got)
	}
}

func TestAuthorizeSupportUnconfigured(t *testing.T) {
	gate := NewGate("owner", "")
	if got := gate.Authorize(TierSupport, "user", []string{"anything"}, true); got.Allowed {
		t.Fatal("expected denial when no support role is configured")
	}
}
