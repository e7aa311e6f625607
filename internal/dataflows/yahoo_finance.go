package dataflows

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// YahooFinanceClient handles ticker resolution and company metadata lookups
type YahooFinanceClient struct {
	cache *CacheManager
	log   *logrus.Entry
}

// NewYahooFinanceClient creates a new Yahoo Finance client
func NewYahooFinanceClient(config *Config) *YahooFinanceClient {
	cacheDir := filepath.Join(config.DataCacheDir, "yahoo_finance")
	cache := NewCacheManager(cacheDir, 24*time.Hour, config.CacheEnabled) // 24 hour cache

	return &YahooFinanceClient{
		cache: cache,
		log:   logrus.WithField("component", "yahoo"),
	}
}

// ResolveTicker maps a free-text company name to a ticker symbol. The name is
// tried as-is, then through a set of mechanical variations. Returns false
// when no candidate resolves.
func (yf *YahooFinanceClient) ResolveTicker(companyName string) (string, bool) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return "", false
	}

	var cached string
	if yf.cache.Get("yahoo", "ticker", companyName, &cached) && cached != "" {
		return cached, true
	}

	yf.log.WithField("company", companyName).Info("Resolving ticker")

	candidates := []string{
		companyName,
		strings.ToUpper(companyName),
		strings.ReplaceAll(companyName, " ", ""),
		strings.ReplaceAll(companyName, " ", "."),
		strings.ReplaceAll(companyName, " ", "-"),
	}

	for _, candidate := range candidates {
		if ValidateSymbol(candidate) != nil {
			continue
		}
		q, err := quote.Get(NormalizeSymbol(candidate))
		if err != nil || q == nil || q.Symbol == "" {
			continue
		}

		yf.log.WithField("symbol", q.Symbol).Info("Found ticker")
		yf.cache.Set("yahoo", "ticker", companyName, q.Symbol)
		return q.Symbol, true
	}

	yf.log.WithField("company", companyName).Warn("Could not resolve ticker")
	return "", false
}

// GetCompanyInfo gets descriptive company metadata for a ticker
func (yf *YahooFinanceClient) GetCompanyInfo(symbol string) (*CompanyInfo, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	var cached CompanyInfo
	if yf.cache.Get("yahoo", "company_info", symbol, &cached) {
		return &cached, nil
	}

	var result *CompanyInfo
	err := WithRetry(DefaultRetryConfig(), func() error {
		q, err := equity.Get(symbol)
		if err != nil {
			return fmt.Errorf("failed to get company info for %s: %w", symbol, err)
		}
		if q == nil {
			return fmt.Errorf("no quote data for %s", symbol)
		}

		result = &CompanyInfo{
			Symbol:       symbol,
			Name:         q.ShortName,
			Exchange:     q.FullExchangeName,
			MarketCap:    decimal.NewFromInt(q.MarketCap),
			CurrentPrice: decimal.NewFromFloat(q.RegularMarketPrice),
			Currency:     q.CurrencyID,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	yf.cache.Set("yahoo", "company_info", symbol, result)

	return result, nil
}
