package latoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lemconn/lalink/model"
)

// parseTicker 解析行情
//
// 交易所不提供买一/卖一价：bid 恒为 0，ask 取最新成交价。
// change 在涨跌幅非零时按 close + close*percentage 计算，否则为 0。
// 时间戳为采集时间，交易所未上报行情时间。
func (l *Latoken) parseTicker(t *tickerInfo, market *model.Market) *model.Ticker {
	last := t.LastPrice.Decimal
	percentage := t.Change24H.Decimal

	change := decimal.Zero
	if !percentage.IsZero() {
		change = last.Add(last.Mul(percentage))
	}

	return &model.Ticker{
		Symbol:      market.Symbol,
		Bid:         decimal.Zero,
		Ask:         last,
		Last:        last,
		Close:       last,
		Change:      change,
		Percentage:  percentage,
		QuoteVolume: t.Volume24H.Decimal,
		Timestamp:   time.Now(),
	}
}

// FetchTicker 获取行情（单个）
func (l *Latoken) FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error) {
	market, err := l.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"base":  market.BaseID,
		"quote": market.QuoteID,
	}
	body, err := l.request(ctx, http.MethodGet, "ticker/{base}/{quote}", publicAPI, params)
	if err != nil {
		return nil, fmt.Errorf("fetch ticker: %w", err)
	}

	var data tickerInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal ticker: %w", err)
	}

	return l.parseTicker(&data, market), nil
}

// FetchTickers 批量获取行情
// 本地没有对应市场的行情会被跳过
func (l *Latoken) FetchTickers(ctx context.Context) (map[string]*model.Ticker, error) {
	body, err := l.request(ctx, http.MethodGet, "ticker", publicAPI, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}

	var data []tickerInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal tickers: %w", err)
	}

	tickers := make(map[string]*model.Ticker)
	for i := range data {
		market := l.marketByCurrencies(data[i].BaseCurrency, data[i].QuoteCurrency)
		if market == nil {
			continue
		}
		tickers[market.Symbol] = l.parseTicker(&data[i], market)
	}
	return tickers, nil
}
