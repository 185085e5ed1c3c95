package model

// Currency 币种信息
type Currency struct {
	// ID 交易所内部标识（UUID）
	ID string `json:"id"`
	// Code 统一币种代码（别名解析后大写），如 "BTC"
	Code string `json:"code"`
	// Name 币种全称
	Name string `json:"name,omitempty"`
	// Precision 精度（小数位数）
	Precision int `json:"precision"`
	// Active 是否活跃
	Active bool `json:"active"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}
