package latoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lemconn/lalink"
	"github.com/lemconn/lalink/common"
	"github.com/lemconn/lalink/exchange"
	"github.com/lemconn/lalink/model"
)

// Latoken LATOKEN 交易所实现
type Latoken struct {
	client *Client
	signer *Signer
	logger logrus.FieldLogger

	mu sync.RWMutex
	// marketsBySymbol 统一格式 (BTC/USDT) -> 市场
	marketsBySymbol map[string]*model.Market
	// marketsByID 交易所格式 (BTC_USDT) -> 市场
	marketsByID map[string]*model.Market
	// marketsByCurrencies 币种 UUID 对 (baseID/quoteID) -> 市场
	marketsByCurrencies map[string]*model.Market
}

// New 创建 LATOKEN 交易所实例
func New(opts ...lalink.Option) (*Latoken, error) {
	options := lalink.ApplyOptions(opts...)

	client, err := NewClient(options)
	if err != nil {
		return nil, fmt.Errorf("create latoken client: %w", err)
	}

	logger := options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Latoken{
		client: client,
		signer: NewSigner(options.APIKey, options.SecretKey),
		logger: logger.WithField("exchange", latokenName),
	}, nil
}

var _ exchange.Exchange = (*Latoken)(nil)

// Name 返回交易所名称
func (l *Latoken) Name() string {
	return latokenName
}

// request 签名并发送请求，随后对响应体做错误归类
// 签名在每次调用时重新计算，不跨请求复用
func (l *Latoken) request(ctx context.Context, method, path string, visibility apiVisibility, params map[string]interface{}) ([]byte, error) {
	signed, err := l.signer.Sign(method, path, visibility, params)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.HTTPClient.Do(ctx, &common.Request{
		Method:  method,
		Path:    signed.Path,
		Headers: signed.Headers,
		Body:    signed.Body,
	})
	if err != nil {
		return nil, err
	}

	if err := classifyResponse(resp.Body); err != nil {
		return nil, err
	}

	// 无法从响应体归类的非 2xx 状态兜底为通用交易所错误
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("latoken http %d %s: %w", resp.StatusCode, resp.Body, lalink.ErrExchange)
	}

	return resp.Body, nil
}

// FetchTime 获取服务器时间
func (l *Latoken) FetchTime(ctx context.Context) (time.Time, error) {
	body, err := l.request(ctx, http.MethodGet, "time", publicAPI, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("fetch time: %w", err)
	}

	var data timeInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return time.Time{}, fmt.Errorf("unmarshal time: %w", err)
	}
	return time.UnixMilli(data.ServerTime), nil
}

// setMarkets 重建市场索引
func (l *Latoken) setMarkets(markets []*model.Market) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.marketsBySymbol = make(map[string]*model.Market, len(markets))
	l.marketsByID = make(map[string]*model.Market, len(markets))
	l.marketsByCurrencies = make(map[string]*model.Market, len(markets))
	for _, market := range markets {
		l.marketsBySymbol[market.Symbol] = market
		l.marketsByID[market.ID] = market
		l.marketsByCurrencies[market.BaseID+"/"+market.QuoteID] = market
	}
}

// GetMarket 获取单个市场信息，支持统一格式和交易所格式
func (l *Latoken) GetMarket(key string) (*model.Market, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if market, ok := l.marketsBySymbol[key]; ok {
		return market, nil
	}
	if market, ok := l.marketsByID[key]; ok {
		return market, nil
	}
	return nil, fmt.Errorf("%w: %s", lalink.ErrMarketNotFound, key)
}

// GetMarkets 从内存中获取所有市场信息
func (l *Latoken) GetMarkets() ([]*model.Market, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	markets := make([]*model.Market, 0, len(l.marketsBySymbol))
	for _, market := range l.marketsBySymbol {
		markets = append(markets, market)
	}
	return markets, nil
}

// marketByCurrencies 按币种 UUID 对查找市场，未加载或未找到时返回 nil
func (l *Latoken) marketByCurrencies(baseID, quoteID string) *model.Market {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.marketsByCurrencies[baseID+"/"+quoteID]
}
