package latoken

import (
	"encoding/json"
	"testing"
)

func TestParseBalances(t *testing.T) {
	ex := newTestExchange(t)

	var currencies []currencyInfo
	if err := json.Unmarshal([]byte(currenciesFixture), &currencies); err != nil {
		t.Fatalf("unmarshal currencies: %v", err)
	}

	raw := `[
		{"id":"acc-1","status":"ACCOUNT_STATUS_ACTIVE","type":"ACCOUNT_TYPE_SPOT","currency":"92151d82-df98-4d88-9a4d-284fa9eca49f","available":"1.5","blocked":"0.5"},
		{"id":"acc-2","status":"ACCOUNT_STATUS_ACTIVE","type":"ACCOUNT_TYPE_SPOT","currency":"0c3a106d-bde3-4c13-a26e-3fd2394529e5","available":"100","blocked":""},
		{"id":"acc-3","status":"ACCOUNT_STATUS_ACTIVE","type":"ACCOUNT_TYPE_SPOT","currency":"ffffffff-0000-0000-0000-000000000000","available":"7","blocked":"0"}
	]`
	var accounts []accountInfo
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		t.Fatalf("unmarshal accounts: %v", err)
	}

	balances := ex.parseBalances(accounts, currencies)

	// 币种无法解析的账户被跳过
	if len(balances) != 2 {
		t.Fatalf("len(balances) = %d, want 2", len(balances))
	}

	btc := balances.GetBalance("BTC")
	if btc.Free.String() != "1.5" || btc.Used.String() != "0.5" {
		t.Fatalf("BTC free/used = %s/%s, want 1.5/0.5", btc.Free, btc.Used)
	}
	if btc.Total.String() != "2" {
		t.Fatalf("BTC total = %s, want 2 (free + used)", btc.Total)
	}

	// 空字符串的冻结余额按 0 处理
	usdt := balances.GetBalance("USDT")
	if usdt.Total.String() != "100" {
		t.Fatalf("USDT total = %s, want 100", usdt.Total)
	}

	// 未持有的币种返回零值余额
	eth := balances.GetBalance("ETH")
	if !eth.Total.IsZero() {
		t.Fatalf("ETH total = %s, want 0", eth.Total)
	}
}
