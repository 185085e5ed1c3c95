package common

import (
	"strings"
	"testing"
)

func TestSignHMAC256(t *testing.T) {
	sig := SignHMAC256("GET/v2/auth/account", "secret")
	if len(sig) != 64 {
		t.Fatalf("signature length = %d, want 64 hex chars", len(sig))
	}
	if sig != SignHMAC256("GET/v2/auth/account", "secret") {
		t.Fatal("signature is not deterministic")
	}
	if sig == SignHMAC256("GET/v2/auth/account", "other") {
		t.Fatal("different secrets produced the same signature")
	}
}

func TestBuildQueryString(t *testing.T) {
	if got := BuildQueryString(nil); got != "" {
		t.Fatalf("BuildQueryString(nil) = %q, want empty", got)
	}

	// 键按字典序排序，与传入顺序无关
	got := BuildQueryString(map[string]interface{}{
		"limit":  100,
		"from":   int64(1586301661310),
		"active": true,
		"price":  "20000.5",
	})
	want := "active=true&from=1586301661310&limit=100&price=20000.5"
	if got != want {
		t.Fatalf("BuildQueryString = %q, want %q", got, want)
	}
}

func TestBuildQueryStringEscaping(t *testing.T) {
	got := BuildQueryString(map[string]interface{}{"note": "a b&c"})
	if strings.Contains(got, " ") || strings.Contains(got, "b&c") {
		t.Fatalf("BuildQueryString did not escape value: %q", got)
	}
	if got != "note=a+b%26c" {
		t.Fatalf("BuildQueryString = %q, want note=a+b%%26c", got)
	}
}

func TestNonceMonotonic(t *testing.T) {
	prev := Nonce()
	for i := 0; i < 1000; i++ {
		n := Nonce()
		if n <= prev {
			t.Fatalf("nonce %d not greater than previous %d", n, prev)
		}
		prev = n
	}
}
