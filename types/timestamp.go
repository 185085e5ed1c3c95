package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExTimestamp 支持多种格式的时间戳类型
// 用于 JSON 反序列化时处理不同格式的时间戳（秒、毫秒、RFC3339）
// LATOKEN v2 接口统一返回毫秒时间戳，秒与 RFC3339 作为兜底格式保留
type ExTimestamp struct {
	time.Time
}

// UnmarshalJSON 自定义 JSON 反序列化，按数字长度识别时间戳精度
func (t *ExTimestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" || s == "0" {
		t.Time = time.Time{}
		return nil
	}

	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		switch {
		case len(s) <= 10:
			t.Time = time.Unix(ts, 0)
		case len(s) <= 13:
			t.Time = time.UnixMilli(ts)
		case len(s) <= 16:
			t.Time = time.UnixMicro(ts)
		default:
			t.Time = time.Unix(0, ts)
		}
		return nil
	}

	// fallback: RFC3339 字符串
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", s, err)
	}
	t.Time = tt
	return nil
}

// MarshalJSON 自定义 JSON 序列化，统一输出毫秒时间戳
func (t ExTimestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}
