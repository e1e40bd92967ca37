// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

const testHashKey = "test-secret-key"

func newTestHasher() *PasswordHasher {
	return NewPasswordHasher(testHashKey, bcrypt.MinCost)
}

func TestPreHash_MatchesHMAC(t *testing.T) {
	h := newTestHasher()

	got := string(h.preHash("pw123"))

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("pw123"))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("preHash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestPreHash_Deterministic(t *testing.T) {
	h := newTestHasher()

	if string(h.preHash("same")) != string(h.preHash("same")) {
		t.Error("preHash must be deterministic for the same input")
	}
}

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := newTestHasher()

	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if digest == "pw123" {
		t.Fatal("digest must not equal the password")
	}

	if !h.Compare(digest, "pw123") {
		t.Error("expected password to match its digest")
	}
	if h.Compare(digest, "wrong") {
		t.Error("expected wrong password not to match")
	}
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	h := newTestHasher()

	d1, _ := h.Hash("pw123")
	d2, _ := h.Hash("pw123")

	if d1 == d2 {
		t.Error("bcrypt digests of the same password must differ")
	}
}

func TestPasswordHasher_LongPassword(t *testing.T) {
	h := newTestHasher()
	long := strings.Repeat("p", 200)

	digest, err := h.Hash(long)
	if err != nil {
		t.Fatalf("expected long password to hash, got: %v", err)
	}
	if h.Compare(digest, long[:100]) {
		t.Error("a prefix of a long password must not match")
	}
}

func TestPasswordHasher_DifferentKeys(t *testing.T) {
	h1 := NewPasswordHasher("key-one", bcrypt.MinCost)
	h2 := NewPasswordHasher("key-two", bcrypt.MinCost)

	digest, _ := h1.Hash("pw123")

	if h2.Compare(digest, "pw123") {
		t.Error("a digest must not verify under a different hash key")
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := newTestHasher()

	if h.Compare("not-a-bcrypt-hash", "pw123") {
		t.Error("malformed digest must not match")
	}
}

func TestNewPasswordHasher_DefaultCost(t *testing.T) {
	h := NewPasswordHasher(testHashKey, 0)
	if h.cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, h.cost)
	}
}
