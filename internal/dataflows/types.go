package dataflows

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/config"
)

// Config is an alias for the main application config
type Config = config.Config

// NewsArticle represents a news article
type NewsArticle struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Content     string            `json:"content"`
	URL         string            `json:"url"`
	Source      string            `json:"source"`
	PublishedAt time.Time         `json:"published_at"`
	ImageURL    string            `json:"image_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// CompanyInfo represents descriptive metadata for a resolved ticker
type CompanyInfo struct {
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Exchange     string          `json:"exchange"`
	Sector       string          `json:"sector"`
	Industry     string          `json:"industry"`
	MarketCap    decimal.Decimal `json:"market_cap"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Currency     string          `json:"currency"`
	Country      string          `json:"country"`
	Website      string          `json:"website"`
	Description  string          `json:"description"`
}

// DateRange represents a time period for data queries
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
