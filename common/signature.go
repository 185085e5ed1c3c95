package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SignHMAC256 HMAC-SHA256签名（hex编码）
func SignHMAC256(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildQueryString 构建查询字符串
// 键按字典序排序并做 URL 编码，保证签名输入与请求 URL 一致
func BuildQueryString(params map[string]interface{}) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		v := params[k]
		var value string
		switch val := v.(type) {
		case string:
			value = val
		case int:
			value = strconv.Itoa(val)
		case int64:
			value = strconv.FormatInt(val, 10)
		case float64:
			value = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			value = strconv.FormatBool(val)
		default:
			value = fmt.Sprintf("%v", val)
		}
		parts = append(parts, fmt.Sprintf("%s=%s", url.QueryEscape(k), url.QueryEscape(value)))
	}
	return strings.Join(parts, "&")
}

var (
	nonceMu   sync.Mutex
	lastNonce int64
)

// Nonce 获取毫秒时间戳作为 nonce
// 同一进程内保证单调不减，避免并发请求被服务端判定为过期
func Nonce() int64 {
	nonceMu.Lock()
	defer nonceMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastNonce {
		now = lastNonce + 1
	}
	lastNonce = now
	return now
}

// GetTimestamp 获取时间戳（毫秒）
func GetTimestamp() int64 {
	return time.Now().UnixMilli()
}

// GetTimestampSeconds 获取时间戳（秒）
func GetTimestampSeconds() int64 {
	return time.Now().Unix()
}
