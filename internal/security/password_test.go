package security

import "testing"

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	passwords := []string{"demo123", "", "pässwörd с юникодом", "a very long password with spaces"}
	for _, password := range passwords {
		hash, salt, err := HashPassword(password)
		if err != nil {
			t.Fatalf("HashPassword(%q) error: %v", password, err)
		}
		if !VerifyPassword(password, hash, salt) {
			t.Fatalf("VerifyPassword(%q) = false, want true", password)
		}
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, salt, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if VerifyPassword("wrong-password", hash, salt) {
		t.Fatal("VerifyPassword accepted a wrong password")
	}
	if VerifyPassword("correct-password", hash, "00000000000000000000000000000000") {
		t.Fatal("VerifyPassword accepted a wrong salt")
	}
}

func TestHash_SaltIsRandom(t *testing.T) {
	t.Parallel()

	hash1, salt1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	hash2, salt2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if salt1 == salt2 {
		t.Fatal("two hashes of the same password produced the same salt")
	}
	if hash1 == hash2 {
		t.Fatal("two hashes of the same password produced the same digest")
	}
	if len(salt1) != 32 { // 16 bytes hex-encoded
		t.Fatalf("salt length = %d, want 32", len(salt1))
	}
}

func TestNewSessionToken_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := NewSessionToken()
		if err != nil {
			t.Fatalf("NewSessionToken error: %v", err)
		}
		if token == "" {
			t.Fatal("empty session token")
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate session token %q", token)
		}
		seen[token] = struct{}{}
	}
}
