package latoken

import "github.com/lemconn/lalink/types"

// currencyInfo LATOKEN 币种原始信息
type currencyInfo struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	Type              string          `json:"type"`
	Name              string          `json:"name"`
	Tag               string          `json:"tag"`
	Description       string          `json:"description"`
	Decimals          int             `json:"decimals"`
	MinTransferAmount types.ExDecimal `json:"minTransferAmount"`
}

// pairInfo LATOKEN 交易对原始信息
type pairInfo struct {
	ID               string          `json:"id"`
	Status           string          `json:"status"`
	BaseCurrency     string          `json:"baseCurrency"`
	QuoteCurrency    string          `json:"quoteCurrency"`
	PriceTick        types.ExDecimal `json:"priceTick"`
	PriceDecimals    int             `json:"priceDecimals"`
	QuantityTick     types.ExDecimal `json:"quantityTick"`
	QuantityDecimals int             `json:"quantityDecimals"`
}

// tickerInfo LATOKEN 行情原始信息
type tickerInfo struct {
	Symbol        string          `json:"symbol"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	LastPrice     types.ExDecimal `json:"lastPrice"`
	Change24H     types.ExDecimal `json:"change24h"`
	Volume24H     types.ExDecimal `json:"volume24h"`
	Amount24H     types.ExDecimal `json:"amount24h"`
}

// tradeInfo LATOKEN 成交原始信息
// Timestamp 以原始整数保留，秒/毫秒的判定在 parseTrade 中处理
type tradeInfo struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	Price         types.ExDecimal `json:"price"`
	Quantity      types.ExDecimal `json:"quantity"`
	Fee           types.ExDecimal `json:"fee"`
	MakerBuyer    bool            `json:"makerBuyer"`
	Timestamp     int64           `json:"timestamp"`
}

// orderInfo LATOKEN 订单原始信息
type orderInfo struct {
	ID            string          `json:"id"`
	ClientOrderID string          `json:"clientOrderId"`
	Status        string          `json:"status"`
	Side          string          `json:"side"`
	Condition     string          `json:"condition"`
	Type          string          `json:"type"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	Price         types.ExDecimal `json:"price"`
	Quantity      types.ExDecimal `json:"quantity"`
	Cost          types.ExDecimal `json:"cost"`
	Filled        types.ExDecimal `json:"filled"`
	Timestamp     int64           `json:"timestamp"`
}

// accountInfo LATOKEN 账户余额原始信息
type accountInfo struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Type      string          `json:"type"`
	Currency  string          `json:"currency"`
	Available types.ExDecimal `json:"available"`
	Blocked   types.ExDecimal `json:"blocked"`
}

// bookLevel LATOKEN 订单簿档位
type bookLevel struct {
	Price    types.ExDecimal `json:"price"`
	Quantity types.ExDecimal `json:"quantity"`
}

// bookInfo LATOKEN 订单簿原始信息
type bookInfo struct {
	Ask      []bookLevel     `json:"ask"`
	Bid      []bookLevel     `json:"bid"`
	TotalAsk types.ExDecimal `json:"totalAsk"`
	TotalBid types.ExDecimal `json:"totalBid"`
}

// timeInfo LATOKEN 服务器时间原始信息
type timeInfo struct {
	ServerTime int64 `json:"serverTime"`
}

// placeOrderInfo 下单/撤单接口的响应
type placeOrderInfo struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
