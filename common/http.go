package common

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Request 一次待发送的 HTTP 请求
// Path 为相对于 baseURL 的路径，查询参数已拼接在内
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    []byte
}

// Response HTTP 响应
// 非 2xx 状态码不视为传输层错误，Body 会原样返回供上层归类
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPClient HTTP客户端
type HTTPClient struct {
	client  *http.Client
	baseURL string
	headers map[string]string
	limiter *rate.Limiter
	logger  logrus.FieldLogger
	debug   bool
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		headers: make(map[string]string),
		logger:  logrus.StandardLogger(),
	}
}

// SetProxy 设置代理
func (c *HTTPClient) SetProxy(proxyURL string) error {
	if proxyURL == "" {
		c.client.Transport = nil
		return nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}

	c.client.Transport = &http.Transport{
		Proxy: http.ProxyURL(proxy),
	}
	return nil
}

// SetHeader 设置默认请求头（对所有请求生效）
func (c *HTTPClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetTimeout 设置超时时间
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetRateLimit 设置每秒最大请求数，rps <= 0 表示不限制
func (c *HTTPClient) SetRateLimit(rps float64) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// SetLogger 设置日志记录器
func (c *HTTPClient) SetLogger(logger logrus.FieldLogger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetDebug 设置是否启用调试模式
func (c *HTTPClient) SetDebug(debug bool) {
	c.debug = debug
}

// Do 发送HTTP请求
// 返回的错误仅代表传输层失败；服务端业务错误通过 Response.Body 由上层归类
func (c *HTTPClient) Do(ctx context.Context, r *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	fullURL := c.baseURL + r.Path

	var reqBody io.Reader
	if len(r.Body) > 0 {
		reqBody = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// 默认请求头在前，单次请求头可以覆盖
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	if c.debug {
		c.logger.WithFields(logrus.Fields{
			"method": r.Method,
			"url":    fullURL,
			"body":   string(r.Body),
		}).Debug("http request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.debug {
			c.logger.WithError(closeErr).Warn("close response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if c.debug {
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Debug("http response")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
