package latoken

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/lemconn/lalink"
	"github.com/lemconn/lalink/common"
)

// apiVersion 版本化路径前缀，签名消息与请求路径共用
const apiVersion = "/v2"

// apiVisibility 接口可见性
type apiVisibility int

const (
	// publicAPI 公共接口，无需认证
	publicAPI apiVisibility = iota
	// privateAPI 私有接口，需要 X-LA-APIKEY / X-LA-SIGNATURE 请求头
	privateAPI
)

// Signer LATOKEN 签名工具
type Signer struct {
	apiKey    string
	secretKey string
}

// NewSigner 创建签名工具
func NewSigner(apiKey, secretKey string) *Signer {
	return &Signer{
		apiKey:    apiKey,
		secretKey: secretKey,
	}
}

// SignedRequest 签名后的请求要素
type SignedRequest struct {
	// Path 包含版本前缀和查询串的完整请求路径
	Path string
	// Headers 请求头（私有接口包含认证头）
	Headers map[string]string
	// Body 请求体（私有 POST 为 JSON 编码的参数集）
	Body []byte
}

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// interpolatePath 替换路径中的 {name} 占位符
// 返回替换后的路径和未被消耗的剩余参数（即查询参数集）
func interpolatePath(path string, params map[string]interface{}) (string, map[string]interface{}) {
	rest := make(map[string]interface{}, len(params))
	for k, v := range params {
		rest[k] = v
	}

	out := placeholderPattern.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := rest[name]
		if !ok {
			return m
		}
		delete(rest, name)
		return fmt.Sprintf("%v", v)
	})
	return out, rest
}

// Sign 构建并签名一个请求
//
// 签名消息为 method + 版本化路径（占位符已替换）+ 查询参数的 URL 编码串，
// HMAC-SHA256 后 hex 编码。私有 POST 的请求体是同一参数集的 JSON 编码，
// 但签名输入仍使用查询串编码，两者各自独立编码——这一不对称是服务端
// 校验的一部分，不能合并。
func (s *Signer) Sign(method, path string, visibility apiVisibility, params map[string]interface{}) (*SignedRequest, error) {
	interpolated, query := interpolatePath(path, params)
	request := apiVersion + "/" + interpolated
	encodedQuery := common.BuildQueryString(query)

	requestPath := request
	if method == http.MethodGet && encodedQuery != "" {
		requestPath += "?" + encodedQuery
	}

	signed := &SignedRequest{
		Path:    requestPath,
		Headers: make(map[string]string),
	}

	if visibility == privateAPI {
		if s.apiKey == "" || s.secretKey == "" {
			return nil, fmt.Errorf("latoken requires apiKey and secretKey for private endpoints: %w", lalink.ErrAuthentication)
		}

		auth := method + request + encodedQuery
		signed.Headers["X-LA-APIKEY"] = s.apiKey
		signed.Headers["X-LA-SIGNATURE"] = common.SignHMAC256(auth, s.secretKey)

		if method == http.MethodPost {
			signed.Headers["Content-Type"] = "application/json"
			body, err := json.Marshal(query)
			if err != nil {
				return nil, fmt.Errorf("marshal request body: %w", err)
			}
			signed.Body = body
		}
	}

	return signed, nil
}
