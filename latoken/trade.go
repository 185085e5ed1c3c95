package latoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lemconn/lalink/model"
)

const (
	// tradeHistoryDefaultLimit 成交历史默认条数
	tradeHistoryDefaultLimit = 50
	// tradeHistoryMaxLimit 成交历史最大条数（交易所上限）
	tradeHistoryMaxLimit = 100
)

// secondsCutoffMilli 2009-01-03 00:00:00 UTC 的毫秒时间戳
// 早于该值的原始时间戳被视为秒并放大为毫秒
const secondsCutoffMilli = int64(1230940800000)

// normalizeTradeTimestamp 归一化成交时间戳为毫秒
func normalizeTradeTimestamp(ts int64) int64 {
	if ts != 0 && ts < secondsCutoffMilli {
		return ts * 1000
	}
	return ts
}

// parseTrade 解析成交记录
//
// makerBuyer 的二值映射是穷尽的：挂单方是买家时该成交对吃单方而言是
// 卖出（maker），否则是买入（taker）。手续费币种交易所不提供，Fee 只
// 携带金额。
func (l *Latoken) parseTrade(t *tradeInfo, market *model.Market) *model.Trade {
	side := model.OrderSideBuy
	role := model.RoleTaker
	if t.MakerBuyer {
		side = model.OrderSideSell
		role = model.RoleMaker
	}

	price := t.Price.Decimal
	amount := t.Quantity.Decimal

	trade := &model.Trade{
		ID:           t.ID,
		OrderID:      t.OrderID,
		Symbol:       market.Symbol,
		Side:         side,
		TakerOrMaker: role,
		Price:        price,
		Amount:       amount,
		Cost:         price.Mul(amount),
		Timestamp:    time.UnixMilli(normalizeTradeTimestamp(t.Timestamp)),
	}

	if !t.Fee.IsZero() {
		trade.Fee = &model.Fee{Cost: t.Fee.Decimal}
	}
	return trade
}

// clampTradeLimit 归一化成交历史条数参数
func clampTradeLimit(limit int) int {
	if limit <= 0 {
		return tradeHistoryDefaultLimit
	}
	if limit > tradeHistoryMaxLimit {
		return tradeHistoryMaxLimit
	}
	return limit
}

// FetchTrades 获取交易记录（公共）
func (l *Latoken) FetchTrades(ctx context.Context, symbol string, limit int) ([]*model.Trade, error) {
	market, err := l.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"currency": market.BaseID,
		"quote":    market.QuoteID,
		"limit":    clampTradeLimit(limit),
	}
	body, err := l.request(ctx, http.MethodGet, "trade/history/{currency}/{quote}", publicAPI, params)
	if err != nil {
		return nil, fmt.Errorf("fetch trades: %w", err)
	}

	return l.parseTrades(body, market)
}

// FetchMyTrades 获取我的交易记录
func (l *Latoken) FetchMyTrades(ctx context.Context, symbol string, limit int) ([]*model.Trade, error) {
	market, err := l.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"currency": market.BaseID,
		"quote":    market.QuoteID,
		"limit":    clampTradeLimit(limit),
	}
	body, err := l.request(ctx, http.MethodGet, "auth/trade/pair/{currency}/{quote}", privateAPI, params)
	if err != nil {
		return nil, fmt.Errorf("fetch my trades: %w", err)
	}

	return l.parseTrades(body, market)
}

// parseTrades 解析成交记录列表
func (l *Latoken) parseTrades(body []byte, market *model.Market) ([]*model.Trade, error) {
	var data []tradeInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal trades: %w", err)
	}

	trades := make([]*model.Trade, 0, len(data))
	for i := range data {
		trades = append(trades, l.parseTrade(&data[i], market))
	}
	return trades, nil
}
