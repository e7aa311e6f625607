package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/dataflows"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/models"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/pipeline"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 2).
			Width(78)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	neutralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// ReportDisplay renders analysis outcomes to the terminal.
type ReportDisplay struct{}

// NewReportDisplay creates a new report display handler
func NewReportDisplay() *ReportDisplay {
	return &ReportDisplay{}
}

// ShowResult renders a complete analysis result: header, company card,
// sentiment summary and the bull/bear narratives.
func (d *ReportDisplay) ShowResult(result *pipeline.Result) {
	d.showHeader(result)
	if result.CompanyInfo != nil {
		d.ShowCompanyInfo(result.CompanyInfo)
	}
	if result.Report != nil {
		d.showSentimentSummary(result.Report)
		d.showCases(result.Report)
		d.showFooter(result)
	}
}

func (d *ReportDisplay) showHeader(result *pipeline.Result) {
	title := fmt.Sprintf("📊 Sentiment Analysis: %s", result.CompanyName)
	if result.Ticker != "" {
		title += fmt.Sprintf(" (%s)", result.Ticker)
	}
	fmt.Println()
	fmt.Println(headerStyle.Render(title))
	fmt.Println()
}

// ShowCompanyInfo renders the company metadata card. Exposed separately so
// the caller can still show it when the news fetch came back empty.
func (d *ReportDisplay) ShowCompanyInfo(info *dataflows.CompanyInfo) {
	fmt.Println(sectionStyle.Render("🏢 COMPANY"))

	if info.Name != "" {
		fmt.Printf("   Name:       %s\n", info.Name)
	}
	if info.Exchange != "" {
		fmt.Printf("   Exchange:   %s\n", info.Exchange)
	}
	if info.Sector != "" {
		fmt.Printf("   Sector:     %s\n", info.Sector)
	}
	if !info.CurrentPrice.IsZero() {
		fmt.Printf("   Price:      %s %s\n", info.CurrentPrice.StringFixed(2), info.Currency)
	}
	if !info.MarketCap.IsZero() {
		fmt.Printf("   Market Cap: %s\n", formatMarketCap(info.MarketCap))
	}
	fmt.Println()
}

func (d *ReportDisplay) showSentimentSummary(report *models.Report) {
	fmt.Println(sectionStyle.Render("📈 OVERALL SENTIMENT"))
	fmt.Printf("   %s\n\n", sentimentStyle(report.OverallSentiment).Render(strings.ToUpper(string(report.OverallSentiment))))

	fmt.Println(sectionStyle.Render("🔎 BREAKDOWN"))
	for _, sentiment := range []models.Sentiment{models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral} {
		count, ok := report.SentimentBreakdown[sentiment]
		if !ok {
			continue
		}
		pct := report.SentimentPercentages[sentiment]
		label := sentimentStyle(sentiment).Render(string(sentiment))
		fmt.Printf("   %s: %d article(s), %.1f%%\n", label, count, pct)
	}
	fmt.Println()
}

func (d *ReportDisplay) showCases(report *models.Report) {
	fmt.Println(positiveStyle.Render("🐂 BULL CASE"))
	for _, point := range report.BullCase {
		printWrapped(point, "   ")
	}
	fmt.Println()

	fmt.Println(negativeStyle.Render("🐻 BEAR CASE"))
	for _, point := range report.BearCase {
		printWrapped(point, "   ")
	}
	fmt.Println()
}

func (d *ReportDisplay) showFooter(result *pipeline.Result) {
	report := result.Report
	summary := fmt.Sprintf("Analyzed %d of %d article(s)", report.AnalyzedArticles, report.TotalArticles)
	if result.Dropped > 0 {
		summary += fmt.Sprintf(", %d dropped", result.Dropped)
	}
	fmt.Println(dimStyle.Render("   " + summary))
	fmt.Println(dimStyle.Render("   Generated at " + report.AnalysisTimestamp))
	fmt.Println(dimStyle.Render("   This analysis is for informational purposes only, not financial advice."))
	fmt.Println()
}

// ShowTickerNotFound renders the "company could not be resolved" outcome.
func (d *ReportDisplay) ShowTickerNotFound(companyName string) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("❌ Could not find a ticker symbol for %q.", companyName)))
	fmt.Println(dimStyle.Render("   Try the exact listed name or the ticker symbol itself."))
}

// ShowNoArticles renders the "ticker resolved but no recent news" outcome.
// Company info, when available, is still shown.
func (d *ReportDisplay) ShowNoArticles(result *pipeline.Result, daysBack int) {
	d.showHeader(result)
	if result.CompanyInfo != nil {
		d.ShowCompanyInfo(result.CompanyInfo)
	}
	fmt.Println(errorStyle.Render(fmt.Sprintf("❌ No relevant news found in the last %d day(s).", daysBack)))
	fmt.Println(dimStyle.Render("   Try a longer lookback window."))
}

// ShowNoJudgments renders the "articles found but none classified" outcome.
func (d *ReportDisplay) ShowNoJudgments(result *pipeline.Result) {
	d.showHeader(result)
	fmt.Println(errorStyle.Render(fmt.Sprintf("❌ Found %d article(s) but none could be analyzed.", result.Fetched)))
	fmt.Println(dimStyle.Render("   The language model may be unavailable or rate limited; try again later."))
}

// ShowError renders an unexpected failure.
func (d *ReportDisplay) ShowError(err error) {
	fmt.Println(errorStyle.Render("❌ Analysis failed:"))
	fmt.Printf("   %v\n", err)
}

func sentimentStyle(sentiment models.Sentiment) lipgloss.Style {
	switch sentiment {
	case models.SentimentPositive:
		return positiveStyle
	case models.SentimentNegative:
		return negativeStyle
	default:
		return neutralStyle
	}
}

// printWrapped prints text with word wrapping and indentation.
func printWrapped(text, indent string) {
	const maxWidth = 75
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	line := indent + words[0]
	for i := 1; i < len(words); i++ {
		if len(line)+1+len(words[i]) > maxWidth {
			fmt.Println(line)
			line = indent + "  " + words[i]
		} else {
			line += " " + words[i]
		}
	}
	if line != indent {
		fmt.Println(line)
	}
}

// formatMarketCap renders a market cap in billions or millions.
func formatMarketCap(cap decimal.Decimal) string {
	billion := decimal.New(1, 9)
	million := decimal.New(1, 6)

	switch {
	case cap.GreaterThanOrEqual(billion):
		return fmt.Sprintf("$%sB", cap.Div(billion).StringFixed(2))
	case cap.GreaterThanOrEqual(million):
		return fmt.Sprintf("$%sM", cap.Div(million).StringFixed(2))
	default:
		return "$" + cap.StringFixed(0)
	}
}
