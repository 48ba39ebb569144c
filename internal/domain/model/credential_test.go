package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCredentialValid(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cred Credential
		want bool
	}{
		{
			name: "unexpired",
			cred: Credential{CookieName: "clsession", Token: "abc", ExpiresAt: now.Add(time.Hour)},
			want: true,
		},
		{
			name: "expired",
			cred: Credential{CookieName: "clsession", Token: "abc", ExpiresAt: now.Add(-time.Minute)},
			want: false,
		},
		{
			name: "expiring exactly now",
			cred: Credential{CookieName: "clsession", Token: "abc", ExpiresAt: now},
			want: false,
		},
		{
			name: "missing token",
			cred: Credential{CookieName: "clsession", ExpiresAt: now.Add(time.Hour)},
			want: false,
		},
		{
			name: "zero value",
			cred: Credential{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cred.Valid(now); got != tt.want {
				t.Fatalf("Valid(%v) = %v, want %v", now, got, tt.want)
			}
		})
	}
}

func TestCredentialJSONLayout(t *testing.T) {
	// The persisted shape must stay compatible with the legacy token file.
	raw := `{"cookie_name":"clsession","token":"opaque-value","expires":"2024-06-01T10:00:00Z"}`

	var cred Credential
	if err := json.Unmarshal([]byte(raw), &cred); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cred.CookieName != "clsession" || cred.Token != "opaque-value" {
		t.Fatalf("unexpected credential: %+v", cred)
	}
	if !cred.ExpiresAt.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected expiry: %v", cred.ExpiresAt)
	}

	out, err := json.Marshal(cred)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"cookie_name"`, `"token"`, `"expires"`} {
		if !strings.Contains(string(out), key) {
			t.Fatalf("expected key %s in %s", key, out)
		}
	}
}

func TestCredentialCookieHeader(t *testing.T) {
	cred := Credential{CookieName: "clsession", Token: "abc123"}
	if got := cred.CookieHeader(); got != "clsession=abc123" {
		t.Fatalf("unexpected cookie header: %q", got)
	}
}
