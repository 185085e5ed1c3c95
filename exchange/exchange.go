package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lemconn/lalink/model"
)

// Exchange 现货交易所统一接口
type Exchange interface {
	// Name 返回交易所名称
	Name() string

	// ========== 市场数据 ==========

	// LoadMarkets 加载市场信息
	LoadMarkets(ctx context.Context, reload bool) error

	// FetchMarkets 获取市场列表
	FetchMarkets(ctx context.Context) ([]*model.Market, error)

	// GetMarket 获取单个市场信息
	GetMarket(symbol string) (*model.Market, error)

	// GetMarkets 从内存中获取所有市场信息
	GetMarkets() ([]*model.Market, error)

	// FetchCurrencies 获取币种列表
	FetchCurrencies(ctx context.Context) ([]*model.Currency, error)

	// FetchTime 获取服务器时间
	FetchTime(ctx context.Context) (time.Time, error)

	// FetchTicker 获取行情（单个）
	FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error)

	// FetchTickers 批量获取行情
	FetchTickers(ctx context.Context) (map[string]*model.Ticker, error)

	// FetchOrderBook 获取订单簿，depth 为深度档位
	FetchOrderBook(ctx context.Context, symbol string, depth int) (*model.OrderBook, error)

	// FetchTrades 获取交易记录（公共）
	FetchTrades(ctx context.Context, symbol string, limit int) ([]*model.Trade, error)

	// ========== 账户信息 ==========

	// FetchBalance 获取余额
	FetchBalance(ctx context.Context) (model.Balances, error)

	// FetchMyTrades 获取我的交易记录
	FetchMyTrades(ctx context.Context, symbol string, limit int) ([]*model.Trade, error)

	// ========== 订单操作 ==========

	// CreateOrder 创建订单，限价单需要通过 model.WithPrice 提供价格
	CreateOrder(ctx context.Context, symbol string, side model.OrderSide, orderType model.OrderType, amount decimal.Decimal, opts ...model.OrderOption) (*model.Order, error)

	// CancelOrder 取消订单
	CancelOrder(ctx context.Context, orderID string) (*model.Order, error)

	// FetchOrder 查询订单
	FetchOrder(ctx context.Context, orderID string) (*model.Order, error)

	// FetchOpenOrders 查询未成交订单
	FetchOpenOrders(ctx context.Context, symbol string) ([]*model.Order, error)

	// FetchOrders 查询订单列表
	FetchOrders(ctx context.Context, symbol string, limit int) ([]*model.Order, error)
}
