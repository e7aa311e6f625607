package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/config"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/analyzer"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/dataflows"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/models"
)

// Terminal outcomes the calling layer must render differently. A ticker miss,
// an empty news window and an all-dropped batch are distinct states, not
// interchangeable failures.
var (
	ErrTickerNotFound = errors.New("ticker not found for company")
	ErrNoArticles     = errors.New("no recent news articles found")
	ErrNoJudgments    = errors.New("no articles could be analyzed")
)

// NewsSource fetches raw article records for a company and lookback window.
type NewsSource interface {
	GetCompanyNews(companyName string, daysBack int, cfg *dataflows.Config) ([]*dataflows.NewsArticle, error)
}

// CompanyResolver maps a free-text company name to a ticker and metadata.
type CompanyResolver interface {
	ResolveTicker(companyName string) (string, bool)
	GetCompanyInfo(symbol string) (*dataflows.CompanyInfo, error)
}

// ContentEnricher optionally upgrades truncated article content in place.
type ContentEnricher interface {
	EnrichContent(article *dataflows.NewsArticle)
}

// Options tune one analysis run. Zero values fall back to the configured
// defaults.
type Options struct {
	MaxArticles int
	DaysBack    int
}

// Result is the full outcome of one analysis run. On sentinel errors the
// partial fields gathered so far (ticker, company info) are still populated
// so the caller can render them.
type Result struct {
	CompanyName string                 `json:"company_name"`
	Ticker      string                 `json:"ticker"`
	CompanyInfo *dataflows.CompanyInfo `json:"company_info,omitempty"`
	Fetched     int                    `json:"fetched_articles"`
	Analyzed    int                    `json:"analyzed_articles"`
	Dropped     int                    `json:"dropped_articles"`
	Report      *models.Report         `json:"report,omitempty"`
}

// Pipeline runs the complete company-to-report flow: resolve ticker, fetch
// news, classify each article sequentially and synthesize the final report.
type Pipeline struct {
	cfg        *config.Config
	news       NewsSource
	resolver   CompanyResolver
	enricher   ContentEnricher
	longport   *dataflows.LongportClient
	classifier *analyzer.Classifier
	synth      *analyzer.Synthesizer
	log        *logrus.Entry
}

// New wires a production pipeline from the configuration and a text
// generator. Longport enrichment is attached only when credentials are
// configured.
func New(cfg *config.Config, gen analyzer.Generator) *Pipeline {
	limiter := analyzer.NewRequestLimiter(cfg.MinRequestInterval)

	p := &Pipeline{
		cfg:        cfg,
		news:       dataflows.NewNewsAPIClient(cfg),
		resolver:   dataflows.NewYahooFinanceClient(cfg),
		enricher:   dataflows.NewArticleScraperClient(cfg),
		classifier: analyzer.NewClassifier(gen, limiter),
		synth:      analyzer.NewSynthesizer(gen, limiter),
		log:        logrus.WithField("component", "pipeline"),
	}

	if lp, err := dataflows.NewLongportClient(cfg); err == nil {
		p.longport = lp
	}

	return p
}

// NewWithSources wires a pipeline with explicit collaborators, used by tests
// and alternative data setups. The enricher may be nil.
func NewWithSources(cfg *config.Config, gen analyzer.Generator, news NewsSource, resolver CompanyResolver, enricher ContentEnricher) *Pipeline {
	limiter := analyzer.NewRequestLimiter(cfg.MinRequestInterval)

	return &Pipeline{
		cfg:        cfg,
		news:       news,
		resolver:   resolver,
		enricher:   enricher,
		classifier: analyzer.NewClassifier(gen, limiter),
		synth:      analyzer.NewSynthesizer(gen, limiter),
		log:        logrus.WithField("component", "pipeline"),
	}
}

// Run executes one analysis. Articles are classified one at a time in input
// order; a failed classification drops that article and continues the batch.
func (p *Pipeline) Run(ctx context.Context, companyName string, opts Options) (*Result, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	maxArticles := opts.MaxArticles
	if maxArticles <= 0 {
		maxArticles = p.cfg.MaxArticles
	}
	daysBack := opts.DaysBack
	if daysBack <= 0 {
		daysBack = p.cfg.DaysBack
	}

	result := &Result{CompanyName: companyName}

	ticker, ok := p.resolver.ResolveTicker(companyName)
	if !ok {
		return result, ErrTickerNotFound
	}
	result.Ticker = ticker

	if info, err := p.resolver.GetCompanyInfo(ticker); err != nil {
		p.log.WithField("ticker", ticker).WithError(err).Warn("Company info unavailable")
	} else {
		if p.longport != nil {
			if err := p.longport.EnrichCompanyInfo(ctx, info); err != nil {
				p.log.WithError(err).Debug("Longport enrichment skipped")
			}
		}
		result.CompanyInfo = info
	}

	articles, err := p.news.GetCompanyNews(companyName, daysBack, p.cfg)
	if err != nil {
		return result, fmt.Errorf("fetch news: %w", err)
	}
	if len(articles) == 0 {
		return result, ErrNoArticles
	}

	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}
	result.Fetched = len(articles)

	judgments := make([]models.SentimentJudgment, 0, len(articles))
	for _, article := range articles {
		if p.enricher != nil {
			p.enricher.EnrichContent(article)
		}

		judgment, err := p.classifier.Classify(ctx, analyzer.Article{
			Title:       article.Title,
			Description: article.Description,
			Content:     article.Content,
			Source:      article.Source,
		})
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			p.log.WithField("title", article.Title).WithError(err).Warn("Dropping article")
			result.Dropped++
			continue
		}

		judgments = append(judgments, *judgment)
	}

	result.Analyzed = len(judgments)
	if len(judgments) == 0 {
		return result, ErrNoJudgments
	}

	report := p.synth.Synthesize(ctx, judgments, companyName)
	report.TotalArticles = result.Fetched
	result.Report = report

	return result, nil
}
