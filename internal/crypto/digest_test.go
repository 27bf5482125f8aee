package crypto_test

import (
	"strings"
	"testing"

	"aoc2022/internal/crypto"
)

func TestDigest_Stable(t *testing.T) {
	a := crypto.Digest([]byte("A Y\nB X\nC Z\n"))
	b := crypto.Digest([]byte("A Y\nB X\nC Z\n"))
	if a != b {
		t.Fatalf("digest not stable: %s vs %s", a, b)
	}
	if len(a) != 2*crypto.DigestSize {
		t.Fatalf("want %d hex chars, got %d", 2*crypto.DigestSize, len(a))
	}
}

func TestDigest_DiffersOnContent(t *testing.T) {
	if crypto.Digest([]byte("1\n")) == crypto.Digest([]byte("1\n\n")) {
		t.Fatal("different inputs produced the same digest")
	}
}

func TestDigest_KnownEmpty(t *testing.T) {
	// BLAKE2b-256 of the empty string.
	const full = "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if got := crypto.Digest(nil); got != full[:2*crypto.DigestSize] {
		t.Fatalf("empty digest = %s", got)
	}
}

func TestSameDigest(t *testing.T) {
	d := crypto.Digest([]byte("x"))
	if !crypto.SameDigest(d, " "+strings.ToUpper(d)+"\n") {
		t.Fatal("expected case and space to be ignored")
	}
	if crypto.SameDigest(d, crypto.Digest([]byte("y"))) {
		t.Fatal("different digests compared equal")
	}
}
