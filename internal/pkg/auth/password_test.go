package auth

import "testing"

func TestBcryptHasherRoundtrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal plaintext")
	}

	if err := hasher.Compare(hash, "s3cret"); err != nil {
		t.Fatalf("expected password to match hash: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error for wrong password")
	}
}

func TestNewBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost == 0 {
		t.Fatal("expected default cost to be applied")
	}
}
