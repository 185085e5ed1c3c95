// Package lalink 提供面向 LATOKEN 交易所的统一交易数据接入层。
// 公共模型位于 model 包，具体实现位于 latoken 包。
package lalink

import (
	"github.com/sirupsen/logrus"
)

// ExchangeOptions 交易所配置选项
type ExchangeOptions struct {
	APIKey    string
	SecretKey string
	BaseURL   string
	Proxy     string
	Debug     bool
	// RateLimit 每秒最大请求数，0 表示不限制
	RateLimit float64
	// Logger 日志记录器，未设置时使用 logrus 标准记录器
	Logger logrus.FieldLogger
	// Options 其他自定义选项
	Options map[string]interface{}
}

// Option 配置选项函数类型
type Option func(*ExchangeOptions)

// WithAPIKey 设置 API Key
func WithAPIKey(apiKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.APIKey = apiKey
	}
}

// WithSecretKey 设置 Secret Key
func WithSecretKey(secretKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.SecretKey = secretKey
	}
}

// WithBaseURL 设置基础 URL
func WithBaseURL(baseURL string) Option {
	return func(opts *ExchangeOptions) {
		opts.BaseURL = baseURL
	}
}

// WithProxy 设置代理
func WithProxy(proxy string) Option {
	return func(opts *ExchangeOptions) {
		opts.Proxy = proxy
	}
}

// WithDebug 设置是否启用调试模式
func WithDebug(debug bool) Option {
	return func(opts *ExchangeOptions) {
		opts.Debug = debug
	}
}

// WithRateLimit 设置每秒最大请求数
func WithRateLimit(rps float64) Option {
	return func(opts *ExchangeOptions) {
		opts.RateLimit = rps
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger logrus.FieldLogger) Option {
	return func(opts *ExchangeOptions) {
		opts.Logger = logger
	}
}

// WithOption 设置自定义选项
func WithOption(key string, value interface{}) Option {
	return func(opts *ExchangeOptions) {
		if opts.Options == nil {
			opts.Options = make(map[string]interface{})
		}
		opts.Options[key] = value
	}
}

// ApplyOptions 应用配置选项
func ApplyOptions(opts ...Option) *ExchangeOptions {
	options := &ExchangeOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
