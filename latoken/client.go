package latoken

import (
	"github.com/lemconn/lalink"
	"github.com/lemconn/lalink/common"
)

const (
	latokenName    = "latoken"
	latokenBaseURL = "https://api.latoken.com"
)

// Client LATOKEN 客户端
type Client struct {
	// HTTPClient HTTP 客户端
	HTTPClient *common.HTTPClient

	// APIKey API 密钥
	APIKey string

	// SecretKey 密钥
	SecretKey string

	// Debug 是否启用调试模式
	Debug bool
}

// NewClient 创建 LATOKEN 客户端
func NewClient(options *lalink.ExchangeOptions) (*Client, error) {
	baseURL := latokenBaseURL
	if options.BaseURL != "" {
		baseURL = options.BaseURL
	}

	client := &Client{
		HTTPClient: common.NewHTTPClient(baseURL),
		APIKey:     options.APIKey,
		SecretKey:  options.SecretKey,
		Debug:      options.Debug,
	}

	// 设置代理
	if options.Proxy != "" {
		if err := client.HTTPClient.SetProxy(options.Proxy); err != nil {
			return nil, err
		}
	}

	// 设置限速
	if options.RateLimit > 0 {
		client.HTTPClient.SetRateLimit(options.RateLimit)
	}

	// 设置日志
	if options.Logger != nil {
		client.HTTPClient.SetLogger(options.Logger)
	}

	// 设置调试模式
	if options.Debug {
		client.HTTPClient.SetDebug(true)
	}

	return client, nil
}
