package auth

import (
	"testing"
	"time"
)

func TestIssueRequiresEmail(t *testing.T) {
	svc := NewService("secret")
	if _, err := svc.Issue(""); err != ErrEmailRequired {
		t.Fatalf("err = %v, want ErrEmailRequired", err)
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("secret")
	token, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	email, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("email = %q, want a@x.com", email)
	}
}

func TestVerifyRejectsMissingToken(t *testing.T) {
	svc := NewService("secret")
	if _, err := svc.Verify(""); err != ErrUnauthorized {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewService("secret")
	if _, err := svc.Verify("not-a-token"); err != ErrUnauthorized {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewService("secret-a").Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewService("secret-b").Verify(token); err != ErrUnauthorized {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewService("secret")
	token, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	svc.now = func() time.Time { return time.Now().Add(TokenTTL + time.Hour) }
	if _, err := svc.Verify(token); err != ErrUnauthorized {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
