package latoken

import (
	"errors"
	"strings"
	"testing"

	"github.com/lemconn/lalink"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			name: "empty body",
			body: "",
			want: nil,
		},
		{
			name: "success payload without message",
			body: `{"id":"1","status":"PAIR_STATUS_ACTIVE"}`,
			want: nil,
		},
		{
			name: "exact auth failure",
			body: `{"message":"Signature or ApiKey is not valid"}`,
			want: lalink.ErrAuthentication,
		},
		{
			name: "exact stale nonce",
			body: `{"message":"Request is out of time"}`,
			want: lalink.ErrInvalidNonce,
		},
		{
			name: "exact missing symbol",
			body: `{"message":"Symbol must be specified"}`,
			want: lalink.ErrBadRequest,
		},
		{
			name: "broad rate limit",
			body: `{"message":"Request limit reached!"}`,
			want: lalink.ErrRateLimit,
		},
		{
			name: "broad invalid price",
			body: `{"message":"Price needs to be greater than 0.001"}`,
			want: lalink.ErrInvalidOrder,
		},
		{
			name: "broad pair",
			body: `{"message":"Pair BTC_USDT is temporarily disabled"}`,
			want: lalink.ErrBadRequest,
		},
		{
			name: "nested order not found",
			body: `{"error":{"message":"Order 123 is not found"}}`,
			want: lalink.ErrOrderNotFound,
		},
		{
			name: "nested cancelable order",
			body: `{"error":{"message":"Cancelable order whit id 42 is not found"}}`,
			want: lalink.ErrOrderNotFound,
		},
		{
			name: "nested side invalid",
			body: `{"error":{"message":"Side is not valid"}}`,
			want: lalink.ErrInvalidOrder,
		},
		{
			name: "unknown top-level message",
			body: `{"message":"Something nobody has seen before"}`,
			want: lalink.ErrExchange,
		},
		{
			name: "unknown nested message",
			body: `{"error":{"message":"Also never seen"}}`,
			want: lalink.ErrExchange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyResponse([]byte(tt.body))
			if tt.want == nil {
				if err != nil {
					t.Fatalf("classifyResponse() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("classifyResponse() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClassifyResponse_MessageIncludedInError(t *testing.T) {
	body := `{"message":"Request limit reached!"}`
	err := classifyResponse([]byte(body))
	if err == nil {
		t.Fatal("classifyResponse() = nil, want error")
	}
	// 错误消息携带客户端标识前缀和原始响应体
	if got := err.Error(); !strings.Contains(got, "latoken") || !strings.Contains(got, body) {
		t.Fatalf("error message %q should contain client id and raw body", got)
	}
}
