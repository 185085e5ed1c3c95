package latoken

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lemconn/lalink"
)

// matchKind 错误消息匹配方式
type matchKind int

const (
	// matchExact 全文相等
	matchExact matchKind = iota
	// matchBroad 子串包含
	matchBroad
)

// errorRule 一条错误归类规则
type errorRule struct {
	kind    matchKind
	pattern string
	target  error
}

// errorRules 错误归类规则表
// 先逐条尝试全部精确规则，再按声明顺序尝试子串规则，首条命中即生效。
// 子串规则之间存在包含关系（如 "Cancelable order whit" 与 "Order"），
// 更具体的规则必须排在前面。
var errorRules = []errorRule{
	{matchExact, "Signature or ApiKey is not valid", lalink.ErrAuthentication},
	{matchExact, "Request is out of time", lalink.ErrInvalidNonce},
	{matchExact, "Symbol must be specified", lalink.ErrBadRequest},

	{matchBroad, "Request limit reached", lalink.ErrRateLimit},
	{matchBroad, "Pair", lalink.ErrBadRequest},
	{matchBroad, "Price needs to be greater than", lalink.ErrInvalidOrder},
	{matchBroad, "Amount needs to be greater than", lalink.ErrInvalidOrder},
	{matchBroad, "The Symbol field is required", lalink.ErrInvalidOrder},
	{matchBroad, "OrderType is not valid", lalink.ErrInvalidOrder},
	{matchBroad, "Side is not valid", lalink.ErrInvalidOrder},
	{matchBroad, "Cancelable order whit", lalink.ErrOrderNotFound},
	{matchBroad, "Order", lalink.ErrOrderNotFound},
}

// classifyMessage 按规则表归类一条错误消息，未命中返回 nil
func classifyMessage(message, body string) error {
	for _, rule := range errorRules {
		if rule.kind != matchExact {
			continue
		}
		if message == rule.pattern {
			return fmt.Errorf("latoken %s: %w", body, rule.target)
		}
	}
	for _, rule := range errorRules {
		if rule.kind != matchBroad {
			continue
		}
		if strings.Contains(message, rule.pattern) {
			return fmt.Errorf("latoken %s: %w", body, rule.target)
		}
	}
	return nil
}

// classifyResponse 检查响应体中的错误消息并归类为具体错误
//
// 依次检查顶层 message 字段与嵌套的 error.message 字段。出现了错误消息
// 但无法归类时返回通用的 ErrExchange，绝不静默放行；没有错误消息的
// 响应体返回 nil。
func classifyResponse(body []byte) error {
	if len(body) == 0 {
		return nil
	}

	if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String && msg.Str != "" {
		if err := classifyMessage(msg.Str, string(body)); err != nil {
			return err
		}
		return fmt.Errorf("latoken %s: %w", body, lalink.ErrExchange)
	}

	if msg := gjson.GetBytes(body, "error.message"); msg.Type == gjson.String && msg.Str != "" {
		if err := classifyMessage(msg.Str, string(body)); err != nil {
			return err
		}
		return fmt.Errorf("latoken %s: %w", body, lalink.ErrExchange)
	}

	return nil
}
