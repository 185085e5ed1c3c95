package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticker 行情信息
type Ticker struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Bid 买一价（交易所不提供真实买一价，始终为 0）
	Bid decimal.Decimal `json:"bid"`
	// Ask 卖一价（交易所不提供真实卖一价，取最新成交价）
	Ask decimal.Decimal `json:"ask"`
	// Last 最新价
	Last decimal.Decimal `json:"last"`
	// Close 收盘价（同 Last）
	Close decimal.Decimal `json:"close"`
	// Change 价格变动
	Change decimal.Decimal `json:"change"`
	// Percentage 24小时涨跌幅
	Percentage decimal.Decimal `json:"percentage"`
	// QuoteVolume 24小时成交额
	QuoteVolume decimal.Decimal `json:"quote_volume"`
	// Timestamp 采集时间（非交易所上报时间）
	Timestamp time.Time `json:"timestamp"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// Tickers 行情信息数组
type Tickers []*Ticker
