// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHash_MatchesDirectHMAC(t *testing.T) {
	InitHasherPool("signature-key")

	data := []byte(`{"event_id":"evt-1"}`)
	got := Hash(data)

	mac := hmac.New(sha256.New, []byte("signature-key"))
	mac.Write(data)
	want := mac.Sum(nil)

	if !hmac.Equal(got, want) {
		t.Errorf("pooled hash differs from direct HMAC: got %x, want %x", got, want)
	}
}

func TestHash_Reusable(t *testing.T) {
	InitHasherPool("signature-key")

	first := Hash([]byte("payload"))
	second := Hash([]byte("payload"))

	if !hmac.Equal(first, second) {
		t.Errorf("same input must hash identically: %x vs %x", first, second)
	}
}

func TestHashString_HexEncoded(t *testing.T) {
	got := HashString("payload", "key")

	raw, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("HashString did not return hex: %v", err)
	}
	if len(raw) != sha256.Size {
		t.Errorf("expected %d byte digest, got %d", sha256.Size, len(raw))
	}
}

func TestHashString_DiffersAcrossKeys(t *testing.T) {
	if HashString("payload", "key-a") == HashString("payload", "key-b") {
		t.Error("different keys must produce different digests")
	}
}
