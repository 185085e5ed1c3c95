package latoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/lemconn/lalink/common"
	"github.com/lemconn/lalink/model"
)

// pairStatusActive 交易对活跃状态
const pairStatusActive = "PAIR_STATUS_ACTIVE"

// LoadMarkets 加载市场信息
func (l *Latoken) LoadMarkets(ctx context.Context, reload bool) error {
	l.mu.RLock()
	loaded := len(l.marketsBySymbol) > 0
	l.mu.RUnlock()
	if loaded && !reload {
		return nil
	}

	markets, err := l.FetchMarkets(ctx)
	if err != nil {
		return fmt.Errorf("load markets: %w", err)
	}

	l.setMarkets(markets)
	return nil
}

// FetchMarkets 获取市场列表
func (l *Latoken) FetchMarkets(ctx context.Context) ([]*model.Market, error) {
	body, err := l.request(ctx, http.MethodGet, "pair", publicAPI, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch pairs: %w", err)
	}

	var pairs []pairInfo
	if err := json.Unmarshal(body, &pairs); err != nil {
		return nil, fmt.Errorf("unmarshal pairs: %w", err)
	}

	currencies, err := l.fetchRawCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	return l.buildMarkets(pairs, currencies), nil
}

// buildMarkets 将原始交易对和币种列表归一化为市场列表
//
// 币种 UUID 无法解析的交易对会被跳过并记录警告，批次中的其他市场不受
// 影响，不会产生 "/" 这样的残缺交易对符号。
func (l *Latoken) buildMarkets(pairs []pairInfo, currencies []currencyInfo) []*model.Market {
	markets := make([]*model.Market, 0, len(pairs))
	for i := range pairs {
		p := &pairs[i]

		base, ok := resolveCurrencyCode(p.BaseCurrency, currencies)
		if !ok {
			l.logger.WithFields(logrus.Fields{
				"pair":     p.ID,
				"currency": p.BaseCurrency,
			}).Warn("skip pair with unknown base currency")
			continue
		}
		quote, ok := resolveCurrencyCode(p.QuoteCurrency, currencies)
		if !ok {
			l.logger.WithFields(logrus.Fields{
				"pair":     p.ID,
				"currency": p.QuoteCurrency,
			}).Warn("skip pair with unknown quote currency")
			continue
		}

		market := &model.Market{
			ID:      common.ToPairID(base, quote),
			Symbol:  common.NormalizeSymbol(base, quote),
			BaseID:  p.BaseCurrency,
			QuoteID: p.QuoteCurrency,
			Base:    base,
			Quote:   quote,
			Active:  p.Status == pairStatusActive,
		}
		market.Precision.Price = p.PriceDecimals
		market.Precision.Amount = p.QuantityDecimals
		market.Limits.Price.Min = p.PriceTick.Decimal
		market.Limits.Amount.Min = p.QuantityTick.Decimal
		// 交易所不提供成本限制，Limits.Cost 保持零值

		markets = append(markets, market)
	}
	return markets
}
