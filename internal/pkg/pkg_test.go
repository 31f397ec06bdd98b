package pkg

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSHA256Hasher(t *testing.T) {
	h, err := NewHasher("sha256")
	if err != nil {
		t.Fatalf("NewHasher() error = %v", err)
	}
	d1, _ := h.Hash("pw1")
	d2, _ := h.Hash("pw1")
	if d1 != d2 {
		t.Errorf("sha256 digest must be deterministic: %s != %s", d1, d2)
	}
	if abc, _ := h.Hash("abc"); abc != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("Hash(abc) = %s", abc)
	}
	if !h.Verify("pw1", d1) {
		t.Error("Verify() rejected the right password")
	}
	if h.Verify("pw2", d1) {
		t.Error("Verify() accepted a wrong password")
	}
}

func TestBcryptHasherAcceptsLegacyDigests(t *testing.T) {
	h, err := NewHasher("bcrypt")
	if err != nil {
		t.Fatalf("NewHasher() error = %v", err)
	}
	d, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(d, "$2") {
		t.Errorf("expected bcrypt digest, got %s", d)
	}
	if !h.Verify("secret", d) || h.Verify("nope", d) {
		t.Error("bcrypt Verify() mismatch")
	}
	if !h.Verify("old", SHA256Hex("old")) {
		t.Error("bcrypt hasher must still verify sha256 digests")
	}
}

func TestNewHasherUnknown(t *testing.T) {
	if _, err := NewHasher("md5"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("NewHasher(md5) error = %v", err)
	}
}

func TestSessionSigner(t *testing.T) {
	s := NewSessionSigner("k", time.Hour)

	token, claims, err := s.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}

	got, err := s.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Username != "alice" || got.ID != claims.ID {
		t.Errorf("Parse() = %+v", got)
	}

	other := NewSessionSigner("other-key", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Parse() with wrong key error = %v, want ErrTokenInvalid", err)
	}

	if _, err := s.Parse("garbage"); err == nil {
		t.Error("Parse(garbage) should fail")
	}
}

func TestSessionSignerExpiry(t *testing.T) {
	s := NewSessionSigner("k", time.Minute)
	start := time.Now()
	s.now = func() time.Time { return start }
	token, _, err := s.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	s.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := s.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Parse() error = %v, want ErrTokenExpired", err)
	}
}

func TestBcryptHasherRejectsLongPasswords(t *testing.T) {
	h, _ := NewHasher("bcrypt")
	if _, err := h.Hash(strings.Repeat("x", 73)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("Hash(73 bytes) error = %v, want ErrPasswordTooLong", err)
	}
	d, err := h.Hash(strings.Repeat("x", 72))
	if err != nil {
		t.Fatalf("Hash(72 bytes) error = %v", err)
	}
	if !h.Verify(strings.Repeat("x", 72), d) {
		t.Error("72-byte password should verify")
	}
	// The legacy digest has no length limit.
	sha, _ := NewHasher("sha256")
	if _, err := sha.Hash(strings.Repeat("x", 200)); err != nil {
		t.Errorf("sha256 Hash(200 bytes) error = %v", err)
	}
}

func TestKafkaProducerSingleAttempt(t *testing.T) {
	p := NewKafkaProducer(KafkaConfig{Brokers: []string{"127.0.0.1:1"}, Topic: "activity"})
	defer p.Close()
	if p.writer.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", p.writer.MaxAttempts)
	}
}
