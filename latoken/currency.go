package latoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lemconn/lalink/model"
)

// commonCurrencies 币种别名表（交易所 tag -> 统一名称）
// 用于区分交易所复用的币种简称
var commonCurrencies = map[string]string{
	"BUX":   "Buxcoin",
	"CBT":   "Community Business Token",
	"CTC":   "CyberTronchain",
	"DMD":   "Diamond Coin",
	"FREN":  "Frenchie",
	"GDX":   "GoldenX",
	"GEC":   "Geco One",
	"GEM":   "NFTmall",
	"GMT":   "GMT Token",
	"IMC":   "IMCoin",
	"MT":    "Monarch",
	"TPAY":  "Tetra Pay",
	"TRADE": "Smart Trade Coin",
	"TSL":   "Treasure SL",
}

// safeCurrencyCode 别名解析后大写，得到统一币种代码
func safeCurrencyCode(tag string) string {
	if alias, ok := commonCurrencies[strings.ToUpper(tag)]; ok {
		return strings.ToUpper(alias)
	}
	return strings.ToUpper(tag)
}

// resolveCurrencyCode 在币种列表中按交易所内部标识（UUID）查找统一币种代码
// 未找到时返回 ok=false，由调用方决定跳过还是报错
func resolveCurrencyCode(id string, currencies []currencyInfo) (string, bool) {
	for i := range currencies {
		if currencies[i].ID == id {
			return safeCurrencyCode(currencies[i].Tag), true
		}
	}
	return "", false
}

// parseCurrency 解析币种信息
func parseCurrency(c *currencyInfo) *model.Currency {
	return &model.Currency{
		ID:        c.ID,
		Code:      safeCurrencyCode(c.Tag),
		Name:      c.Name,
		Precision: c.Decimals,
		Active:    c.Status == "CURRENCY_STATUS_ACTIVE",
	}
}

// FetchCurrencies 获取币种列表
func (l *Latoken) FetchCurrencies(ctx context.Context) ([]*model.Currency, error) {
	body, err := l.request(ctx, http.MethodGet, "currency", publicAPI, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch currencies: %w", err)
	}

	var data []currencyInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal currencies: %w", err)
	}

	currencies := make([]*model.Currency, 0, len(data))
	for i := range data {
		currencies = append(currencies, parseCurrency(&data[i]))
	}
	return currencies, nil
}

// FetchAvailableCurrencies 获取可交易的币种列表
func (l *Latoken) FetchAvailableCurrencies(ctx context.Context) ([]*model.Currency, error) {
	body, err := l.request(ctx, http.MethodGet, "currency/available", publicAPI, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch available currencies: %w", err)
	}

	var data []currencyInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal currencies: %w", err)
	}

	currencies := make([]*model.Currency, 0, len(data))
	for i := range data {
		currencies = append(currencies, parseCurrency(&data[i]))
	}
	return currencies, nil
}

// fetchRawCurrencies 获取原始币种列表，供市场构建和余额解析使用
func (l *Latoken) fetchRawCurrencies(ctx context.Context) ([]currencyInfo, error) {
	body, err := l.request(ctx, http.MethodGet, "currency", publicAPI, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch currencies: %w", err)
	}

	var data []currencyInfo
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal currencies: %w", err)
	}
	return data, nil
}
