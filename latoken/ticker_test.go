package latoken

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTicker(t *testing.T) {
	ex := newTestExchange(t)
	pairs, currencies := loadMarketFixtures(t)
	ex.setMarkets(ex.buildMarkets(pairs, currencies))
	market, err := ex.GetMarket("BTC/USDT")
	if err != nil {
		t.Fatalf("GetMarket: %v", err)
	}

	raw := `{
		"symbol": "BTC/USDT",
		"baseCurrency": "92151d82-df98-4d88-9a4d-284fa9eca49f",
		"quoteCurrency": "0c3a106d-bde3-4c13-a26e-3fd2394529e5",
		"lastPrice": "20000",
		"change24h": "0.05",
		"volume24h": "1234.5"
	}`
	var info tickerInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		t.Fatalf("unmarshal ticker: %v", err)
	}

	before := time.Now()
	ticker := ex.parseTicker(&info, market)
	after := time.Now()

	// 交易所不提供买一价，bid 恒为 0；ask 取最新成交价
	if !ticker.Bid.IsZero() {
		t.Fatalf("Bid = %s, want 0", ticker.Bid)
	}
	if !ticker.Ask.Equal(ticker.Last) || !ticker.Close.Equal(ticker.Last) {
		t.Fatalf("Ask/Close = %s/%s, want both == Last (%s)", ticker.Ask, ticker.Close, ticker.Last)
	}
	if got := ticker.Change.String(); got != "21000" {
		t.Fatalf("Change = %s, want 21000 (close + close*percentage)", got)
	}
	if got := ticker.Percentage.String(); got != "0.05" {
		t.Fatalf("Percentage = %s, want 0.05", got)
	}
	if got := ticker.QuoteVolume.String(); got != "1234.5" {
		t.Fatalf("QuoteVolume = %s, want 1234.5", got)
	}

	// 时间戳是采集时间
	if ticker.Timestamp.Before(before) || ticker.Timestamp.After(after) {
		t.Fatalf("Timestamp %v outside capture window [%v, %v]", ticker.Timestamp, before, after)
	}
}

func TestParseTicker_ZeroPercentage(t *testing.T) {
	ex := newTestExchange(t)
	pairs, currencies := loadMarketFixtures(t)
	ex.setMarkets(ex.buildMarkets(pairs, currencies))
	market, _ := ex.GetMarket("BTC/USDT")

	info := tickerInfo{}
	if err := json.Unmarshal([]byte(`{"lastPrice":"100","change24h":"0"}`), &info); err != nil {
		t.Fatalf("unmarshal ticker: %v", err)
	}

	ticker := ex.parseTicker(&info, market)
	if !ticker.Change.IsZero() {
		t.Fatalf("Change = %s, want 0 when percentage is 0", ticker.Change)
	}
}
