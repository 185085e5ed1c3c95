package model

import "github.com/shopspring/decimal"

// Market 市场信息
type Market struct {
	// ID 交易所格式的市场ID，如 "BTC_USDT"
	ID string `json:"id"`

	// Symbol 交易对符号（统一格式），如 "BTC/USDT"
	Symbol string `json:"symbol"`

	// BaseID 基础货币的交易所内部标识（UUID）
	BaseID string `json:"base_id"`

	// QuoteID 计价货币的交易所内部标识（UUID）
	QuoteID string `json:"quote_id"`

	// Base 基础货币，如 "BTC"
	Base string `json:"base"`

	// Quote 计价货币，如 "USDT"
	Quote string `json:"quote"`

	// Active 是否活跃
	Active bool `json:"active"`

	// Precision 精度信息
	Precision struct {
		// Amount 数量精度（小数位数）
		Amount int `json:"amount"`
		// Price 价格精度（小数位数）
		Price int `json:"price"`
	} `json:"precision"`

	// Limits 限制信息（交易所不提供成本限制，Cost 始终为零值）
	Limits struct {
		// Amount 数量限制
		Amount struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"amount"`
		// Price 价格限制
		Price struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"price"`
		// Cost 成本限制
		Cost struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"cost"`
	} `json:"limits"`

	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}
