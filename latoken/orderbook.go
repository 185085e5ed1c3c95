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
	// orderBookDefaultDepth 订单簿默认深度档位
	orderBookDefaultDepth = 10
	// orderBookMaxDepth 订单簿最大深度档位（交易所上限）
	orderBookMaxDepth = 500
)

// FetchOrderBook 获取订单簿
func (l *Latoken) FetchOrderBook(ctx context.Context, symbol string, depth int) (*model.OrderBook, error) {
	market, err := l.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	if depth <= 0 {
		depth = orderBookDefaultDepth
	}
	if depth > orderBookMaxDepth {
		depth = orderBookMaxDepth
	}

	params := map[string]interface{}{
		"market_pair": market.ID,
		"depth":       depth,
	}
	body, err := l.request(ctx, http.MethodGet, "marketOverview/orderbook/{market_pair}", publicAPI, params)
	if err != nil {
		return nil, fmt.Errorf("fetch order book: %w", err)
	}

	var data bookInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal order book: %w", err)
	}

	book := &model.OrderBook{
		Symbol:    market.Symbol,
		Bids:      make([]model.OrderBookEntry, 0, len(data.Bid)),
		Asks:      make([]model.OrderBookEntry, 0, len(data.Ask)),
		Timestamp: time.Now(),
	}
	for _, level := range data.Bid {
		book.Bids = append(book.Bids, model.OrderBookEntry{
			Price:  level.Price.Decimal,
			Amount: level.Quantity.Decimal,
		})
	}
	for _, level := range data.Ask {
		book.Asks = append(book.Asks, model.OrderBookEntry{
			Price:  level.Price.Decimal,
			Amount: level.Quantity.Decimal,
		})
	}
	return book, nil
}
