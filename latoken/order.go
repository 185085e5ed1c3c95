package latoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lemconn/lalink"
	"github.com/lemconn/lalink/common"
	"github.com/lemconn/lalink/model"
)

// orderStatuses 订单状态映射表
// 未收录的原始状态原样透传，状态集合是开放的
var orderStatuses = map[string]model.OrderStatus{
	"active":    model.OrderStatusOpen,
	"placed":    model.OrderStatusOpen,
	"filled":    model.OrderStatusClosed,
	"closed":    model.OrderStatusClosed,
	"cancelled": model.OrderStatusCanceled,
}

// parseOrderStatus 解析订单状态
func parseOrderStatus(raw string) model.OrderStatus {
	if status, ok := orderStatuses[raw]; ok {
		return status
	}
	return model.OrderStatus(raw)
}

// parseOrder 解析订单
//
// 交易对符号由订单携带的币种 UUID 对在本地市场索引中解析，与市场
// 归一化使用同一套解析策略；市场未加载或未收录时 Symbol 为空。
func (l *Latoken) parseOrder(o *orderInfo) *model.Order {
	symbol := ""
	if market := l.marketByCurrencies(o.BaseCurrency, o.QuoteCurrency); market != nil {
		symbol = market.Symbol
	}

	amount := o.Quantity.Decimal
	filled := o.Filled.Decimal
	price := o.Price.Decimal

	return &model.Order{
		ID:            o.ID,
		ClientOrderID: o.ClientOrderID,
		Symbol:        symbol,
		Type:          model.OrderType(strings.ToLower(o.Type)),
		Side:          model.OrderSide(strings.ToLower(o.Side)),
		Amount:        amount,
		Price:         price,
		Filled:        filled,
		Remaining:     amount.Sub(filled),
		Cost:          filled.Mul(price),
		Status:        parseOrderStatus(o.Status),
		Timestamp:     time.UnixMilli(o.Timestamp),
	}
}

// CreateOrder 创建订单
// 仅支持限价单和市价单，其他类型在发起任何网络请求之前被拒绝；
// 限价单必须通过 model.WithPrice 提供价格
func (l *Latoken) CreateOrder(ctx context.Context, symbol string, side model.OrderSide, orderType model.OrderType, amount decimal.Decimal, opts ...model.OrderOption) (*model.Order, error) {
	if orderType != model.OrderTypeLimit && orderType != model.OrderTypeMarket {
		return nil, fmt.Errorf("latoken createOrder: unsupported order type %q: %w", orderType, lalink.ErrInvalidOrder)
	}

	options := model.ApplyOrderOptions(opts...)
	if orderType == model.OrderTypeLimit && options.Price == nil {
		return nil, fmt.Errorf("latoken createOrder: limit order requires a price: %w", lalink.ErrArguments)
	}

	market, err := l.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	clientOrderID := common.GenerateClientOrderID(latokenName)
	if options.ClientOrderID != nil && *options.ClientOrderID != "" {
		clientOrderID = *options.ClientOrderID
	}

	params := map[string]interface{}{
		"baseCurrency":  market.BaseID,
		"quoteCurrency": market.QuoteID,
		"side":          strings.ToUpper(string(side)),
		"condition":     "GTC",
		"type":          strings.ToUpper(string(orderType)),
		"clientOrderId": clientOrderID,
		"quantity":      amount.String(),
		"timestamp":     common.Nonce() / 1000,
	}
	if options.Price != nil {
		params["price"] = options.Price.String()
	}

	body, err := l.request(ctx, http.MethodPost, "auth/order/place", privateAPI, params)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	var result placeOrderInfo
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}

	order := &model.Order{
		ID:            result.ID,
		ClientOrderID: clientOrderID,
		Symbol:        market.Symbol,
		Type:          orderType,
		Side:          side,
		Amount:        amount,
		Remaining:     amount,
		Status:        model.OrderStatusOpen,
		Timestamp:     time.Now(),
	}
	if options.Price != nil {
		order.Price = *options.Price
	}
	return order, nil
}

// CancelOrder 取消订单
func (l *Latoken) CancelOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("latoken cancelOrder: order id is required: %w", lalink.ErrArguments)
	}

	params := map[string]interface{}{
		"id": orderID,
	}
	body, err := l.request(ctx, http.MethodPost, "auth/order/cancel", privateAPI, params)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	var result placeOrderInfo
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal cancel order: %w", err)
	}

	return &model.Order{
		ID:     result.ID,
		Status: model.OrderStatusCanceled,
	}, nil
}

// FetchOrder 查询订单
func (l *Latoken) FetchOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("latoken fetchOrder: order id is required: %w", lalink.ErrArguments)
	}

	params := map[string]interface{}{
		"id": orderID,
	}
	body, err := l.request(ctx, http.MethodGet, "auth/order/getOrder/{id}", privateAPI, params)
	if err != nil {
		return nil, fmt.Errorf("fetch order: %w", err)
	}

	var data orderInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return l.parseOrder(&data), nil
}

// FetchOpenOrders 查询未成交订单
func (l *Latoken) FetchOpenOrders(ctx context.Context, symbol string) ([]*model.Order, error) {
	market, err := l.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"currency": market.BaseID,
		"quote":    market.QuoteID,
	}
	body, err := l.request(ctx, http.MethodGet, "auth/order/pair/{currency}/{quote}/active", privateAPI, params)
	if err != nil {
		return nil, fmt.Errorf("fetch open orders: %w", err)
	}

	return l.parseOrders(body)
}

// FetchOrders 查询订单列表
func (l *Latoken) FetchOrders(ctx context.Context, symbol string, limit int) ([]*model.Order, error) {
	market, err := l.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"currency": market.BaseID,
		"quote":    market.QuoteID,
	}
	if limit > 0 {
		params["limit"] = limit
	}
	body, err := l.request(ctx, http.MethodGet, "auth/order/pair/{currency}/{quote}", privateAPI, params)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	return l.parseOrders(body)
}

// parseOrders 解析订单列表
func (l *Latoken) parseOrders(body []byte) ([]*model.Order, error) {
	var data []orderInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}

	orders := make([]*model.Order, 0, len(data))
	for i := range data {
		orders = append(orders, l.parseOrder(&data[i]))
	}
	return orders, nil
}
