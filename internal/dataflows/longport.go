package dataflows

import (
	"context"
	"errors"

	lpconfig "github.com/longportapp/openapi-go/config"
	"github.com/longportapp/openapi-go/quote"
)

// LongportClient is an optional secondary company-info source. It is only
// constructed when Longport credentials are configured; the pipeline treats
// it as best-effort enrichment on top of the Yahoo data.
type LongportClient struct {
	quoteCtx *quote.QuoteContext
}

// NewLongportClient creates a Longport client from configured credentials.
func NewLongportClient(cfg *Config) (*LongportClient, error) {
	if cfg.LongportAppKey == "" || cfg.LongportAppSecret == "" || cfg.LongportAccessToken == "" {
		return nil, errors.New("longport API credentials not configured")
	}

	conf, err := lpconfig.New(lpconfig.WithConfigKey(cfg.LongportAppKey, cfg.LongportAppSecret, cfg.LongportAccessToken))
	if err != nil {
		return nil, err
	}

	quoteContext, err := quote.NewFromCfg(conf)
	if err != nil {
		return nil, err
	}

	return &LongportClient{
		quoteCtx: quoteContext,
	}, nil
}

// EnrichCompanyInfo fills gaps in the given company info from Longport static
// data. Missing fields stay as they were on any failure.
func (lpc *LongportClient) EnrichCompanyInfo(ctx context.Context, info *CompanyInfo) error {
	if lpc.quoteCtx == nil {
		return errors.New("quote context is nil")
	}
	if info == nil || info.Symbol == "" {
		return errors.New("no symbol to enrich")
	}

	staticInfos, err := lpc.quoteCtx.StaticInfo(ctx, []string{info.Symbol})
	if err != nil {
		return err
	}
	if len(staticInfos) == 0 {
		return errors.New("no static info returned")
	}

	si := staticInfos[0]
	if info.Name == "" && si.NameEn != "" {
		info.Name = si.NameEn
	}
	if info.Exchange == "" && si.Exchange != "" {
		info.Exchange = si.Exchange
	}
	if info.Currency == "" && si.Currency != "" {
		info.Currency = si.Currency
	}

	return nil
}
