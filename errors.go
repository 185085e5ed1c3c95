package lalink

import "errors"

var (
	// ErrArguments 参数错误（在发起任何网络请求之前抛出）
	ErrArguments = errors.New("invalid arguments")
	// ErrAuthentication 认证失败（签名或 ApiKey 无效、缺少密钥）
	ErrAuthentication = errors.New("authentication failed")
	// ErrInvalidNonce 请求时间戳过期
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrRateLimit 请求频率超限
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrBadRequest 请求不合法
	ErrBadRequest = errors.New("bad request")
	// ErrInvalidOrder 无效的订单
	ErrInvalidOrder = errors.New("invalid order")
	// ErrOrderNotFound 订单未找到
	ErrOrderNotFound = errors.New("order not found")
	// ErrMarketNotFound 市场未找到
	ErrMarketNotFound = errors.New("market not found")
	// ErrCurrencyNotFound 币种未找到
	ErrCurrencyNotFound = errors.New("currency not found")
	// ErrExchange 交易所返回了无法归类的错误消息
	ErrExchange = errors.New("exchange error")
)
