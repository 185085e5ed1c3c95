package latoken

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lemconn/lalink/model"
)

// FetchBalance 获取余额
// 先取账户数据，再取币种列表用于把账户携带的币种 UUID 解析为统一代码；
// 无法解析的账户条目会被跳过并记录警告
func (l *Latoken) FetchBalance(ctx context.Context) (model.Balances, error) {
	body, err := l.request(ctx, http.MethodGet, "auth/account", privateAPI, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch balance: %w", err)
	}

	var accounts []accountInfo
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, fmt.Errorf("unmarshal accounts: %w", err)
	}

	currencies, err := l.fetchRawCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	return l.parseBalances(accounts, currencies), nil
}

// parseBalances 解析账户余额列表
func (l *Latoken) parseBalances(accounts []accountInfo, currencies []currencyInfo) model.Balances {
	balances := make(model.Balances)
	for i := range accounts {
		a := &accounts[i]

		code, ok := resolveCurrencyCode(a.Currency, currencies)
		if !ok {
			l.logger.WithField("currency", a.Currency).Warn("skip account with unknown currency")
			continue
		}

		free := a.Available.Decimal
		used := a.Blocked.Decimal
		balances[code] = &model.Balance{
			Currency: code,
			Free:     free,
			Used:     used,
			Total:    free.Add(used),
		}
	}
	return balances
}
