package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide 订单方向
type OrderSide string

const (
	// OrderSideBuy 买入
	OrderSideBuy OrderSide = "buy"
	// OrderSideSell 卖出
	OrderSideSell OrderSide = "sell"
)

// OrderType 订单类型
type OrderType string

const (
	// OrderTypeMarket 市价单
	OrderTypeMarket OrderType = "market"
	// OrderTypeLimit 限价单
	OrderTypeLimit OrderType = "limit"
)

// OrderStatus 订单状态
// 状态集合是开放的：交易所返回的未知原始状态会原样透传
type OrderStatus string

const (
	// OrderStatusOpen 未成交订单
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusClosed 已成交订单
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCanceled 已取消订单
	OrderStatusCanceled OrderStatus = "canceled"
)

// Fee 手续费信息
type Fee struct {
	// Currency 手续费币种（交易所不提供，可能为空）
	Currency string `json:"currency,omitempty"`
	// Cost 手续费金额
	Cost decimal.Decimal `json:"cost"`
}

// Order 订单信息
type Order struct {
	// ID 订单ID
	ID string `json:"id"`
	// ClientOrderID 客户端订单ID
	ClientOrderID string `json:"client_order_id,omitempty"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Type 订单类型
	Type OrderType `json:"type"`
	// Side 订单方向
	Side OrderSide `json:"side"`
	// Amount 订单数量
	Amount decimal.Decimal `json:"amount"`
	// Price 订单价格
	Price decimal.Decimal `json:"price"`
	// Filled 已成交数量
	Filled decimal.Decimal `json:"filled"`
	// Remaining 未成交数量（amount - filled）
	Remaining decimal.Decimal `json:"remaining"`
	// Cost 成交金额（filled * price）
	Cost decimal.Decimal `json:"cost"`
	// Status 订单状态
	Status OrderStatus `json:"status"`
	// Timestamp 时间戳
	Timestamp time.Time `json:"timestamp"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// OrderOptions 订单选项
type OrderOptions struct {
	// Price 价格（限价单必填）
	Price *decimal.Decimal
	// ClientOrderID 客户端订单ID
	ClientOrderID *string
}

// OrderOption 订单选项函数类型
type OrderOption func(*OrderOptions)

// WithPrice 设置价格
func WithPrice(price decimal.Decimal) OrderOption {
	return func(opts *OrderOptions) {
		opts.Price = &price
	}
}

// WithClientOrderID 设置客户端订单ID
func WithClientOrderID(id string) OrderOption {
	return func(opts *OrderOptions) {
		opts.ClientOrderID = &id
	}
}

// ApplyOrderOptions 应用订单选项
func ApplyOrderOptions(opts ...OrderOption) *OrderOptions {
	options := &OrderOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
