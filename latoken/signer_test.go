package latoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lemconn/lalink"
)

func hmacSHA256Hex(t *testing.T, message, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSigner_PublicGetAppendsQuery(t *testing.T) {
	s := NewSigner("", "")

	params := map[string]interface{}{
		"currency": "aaaa-bbbb",
		"quote":    "cccc-dddd",
		"limit":    50,
	}
	signed, err := s.Sign(http.MethodGet, "trade/history/{currency}/{quote}", publicAPI, params)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	want := "/v2/trade/history/aaaa-bbbb/cccc-dddd?limit=50"
	if signed.Path != want {
		t.Fatalf("Path = %q, want %q", signed.Path, want)
	}
	if len(signed.Headers) != 0 {
		t.Fatalf("public request should carry no auth headers, got %v", signed.Headers)
	}
	if signed.Body != nil {
		t.Fatalf("GET request should carry no body, got %s", signed.Body)
	}
}

func TestSigner_PrivateGetSignature(t *testing.T) {
	s := NewSigner("test-key", "test-secret")

	params := map[string]interface{}{
		"currency": "aaaa",
		"quote":    "bbbb",
		"limit":    10,
	}
	signed, err := s.Sign(http.MethodGet, "auth/trade/pair/{currency}/{quote}", privateAPI, params)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	if signed.Headers["X-LA-APIKEY"] != "test-key" {
		t.Fatalf("X-LA-APIKEY = %q, want %q", signed.Headers["X-LA-APIKEY"], "test-key")
	}

	// 签名消息为 method + 版本化路径 + 查询串，路径与查询串之间没有 "?"
	wantMessage := "GET/v2/auth/trade/pair/aaaa/bbbblimit=10"
	wantSig := hmacSHA256Hex(t, wantMessage, "test-secret")
	if signed.Headers["X-LA-SIGNATURE"] != wantSig {
		t.Fatalf("X-LA-SIGNATURE = %q, want %q", signed.Headers["X-LA-SIGNATURE"], wantSig)
	}

	wantPath := "/v2/auth/trade/pair/aaaa/bbbb?limit=10"
	if signed.Path != wantPath {
		t.Fatalf("Path = %q, want %q", signed.Path, wantPath)
	}
}

func TestSigner_PrivatePostBodyIsJSONButSignatureUsesQueryEncoding(t *testing.T) {
	s := NewSigner("key", "secret")

	params := map[string]interface{}{
		"baseCurrency": "aaaa",
		"side":         "BUY",
		"quantity":     "1.5",
	}
	signed, err := s.Sign(http.MethodPost, "auth/order/place", privateAPI, params)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	// POST 的查询参数不进入路径
	if signed.Path != "/v2/auth/order/place" {
		t.Fatalf("Path = %q, want %q", signed.Path, "/v2/auth/order/place")
	}

	// 请求体为 JSON，签名输入为同一参数集的查询串编码
	wantMessage := "POST/v2/auth/order/place" + "baseCurrency=aaaa&quantity=1.5&side=BUY"
	wantSig := hmacSHA256Hex(t, wantMessage, "secret")
	if signed.Headers["X-LA-SIGNATURE"] != wantSig {
		t.Fatalf("X-LA-SIGNATURE = %q, want %q", signed.Headers["X-LA-SIGNATURE"], wantSig)
	}
	if signed.Headers["Content-Type"] != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", signed.Headers["Content-Type"])
	}

	var body map[string]interface{}
	if err := json.Unmarshal(signed.Body, &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["baseCurrency"] != "aaaa" || body["side"] != "BUY" || body["quantity"] != "1.5" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSigner_Deterministic(t *testing.T) {
	s := NewSigner("key", "secret")
	params := func() map[string]interface{} {
		return map[string]interface{}{"limit": 10, "currency": "aaaa", "quote": "bbbb"}
	}

	first, err := s.Sign(http.MethodGet, "auth/order/pair/{currency}/{quote}", privateAPI, params())
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	second, err := s.Sign(http.MethodGet, "auth/order/pair/{currency}/{quote}", privateAPI, params())
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if first.Headers["X-LA-SIGNATURE"] != second.Headers["X-LA-SIGNATURE"] {
		t.Fatalf("signature is not deterministic: %q != %q",
			first.Headers["X-LA-SIGNATURE"], second.Headers["X-LA-SIGNATURE"])
	}

	base := first.Headers["X-LA-SIGNATURE"]
	if len(base) != 64 {
		t.Fatalf("signature length = %d, want 64 hex chars", len(base))
	}

	// 任一输入变化都必须改变签名
	variants := []struct {
		name   string
		signer *Signer
		method string
		path   string
		params map[string]interface{}
	}{
		{"method", s, http.MethodPost, "auth/order/pair/{currency}/{quote}", params()},
		{"path", s, http.MethodGet, "auth/order/pair/{currency}/{quote}/active", params()},
		{"params", s, http.MethodGet, "auth/order/pair/{currency}/{quote}",
			map[string]interface{}{"limit": 11, "currency": "aaaa", "quote": "bbbb"}},
		{"secret", NewSigner("key", "other-secret"), http.MethodGet, "auth/order/pair/{currency}/{quote}", params()},
	}
	for _, v := range variants {
		signed, err := v.signer.Sign(v.method, v.path, privateAPI, v.params)
		if err != nil {
			t.Fatalf("%s: Sign() error: %v", v.name, err)
		}
		if signed.Headers["X-LA-SIGNATURE"] == base {
			t.Errorf("changing %s did not change the signature", v.name)
		}
	}
}

func TestSigner_PrivateRequiresCredentials(t *testing.T) {
	s := NewSigner("", "")

	_, err := s.Sign(http.MethodGet, "auth/account", privateAPI, nil)
	if !errors.Is(err, lalink.ErrAuthentication) {
		t.Fatalf("Sign() error = %v, want ErrAuthentication", err)
	}
}

func TestInterpolatePath(t *testing.T) {
	path, rest := interpolatePath("ticker/{base}/{quote}", map[string]interface{}{
		"base":  "aaaa",
		"quote": "bbbb",
		"limit": 5,
	})
	if path != "ticker/aaaa/bbbb" {
		t.Fatalf("path = %q, want %q", path, "ticker/aaaa/bbbb")
	}
	if len(rest) != 1 || rest["limit"] != 5 {
		t.Fatalf("rest = %v, want only limit=5", rest)
	}

	// 没有对应参数的占位符保留原样
	path, _ = interpolatePath("ticker/{base}/{quote}", map[string]interface{}{"base": "aaaa"})
	if path != "ticker/aaaa/{quote}" {
		t.Fatalf("path = %q, want %q", path, "ticker/aaaa/{quote}")
	}
}
