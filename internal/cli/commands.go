package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/config"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/analyzer"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/dataflows"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/debug"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/display"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/pipeline"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "fsagent",
		Short: "Financial Sentiment Analyst - AI-Powered News Sentiment Analysis",
		Long: `Financial Sentiment Analyst aggregates recent news coverage for a company,
classifies each article with a Large Language Model and synthesizes the
results into a structured sentiment report with bull and bear narratives.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
				cfg.Debug = true
				logrus.SetLevel(logrus.DebugLevel)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			return runInteractiveMode(cfg)
		},
	}

	rootCmd.AddCommand(newAnalyzeCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	return rootCmd
}

// newAnalyzeCmd creates the analyze command
func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [COMPANY]",
		Short: "Analyze news sentiment for a company",
		Long: `Run a sentiment analysis for a company by name.
Example: fsagent analyze "Apple Inc" --days-back=7 --max-articles=5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			companyName := strings.Join(args, " ")
			daysBack, _ := cmd.Flags().GetInt("days-back")
			maxArticles, _ := cmd.Flags().GetInt("max-articles")
			save, _ := cmd.Flags().GetBool("save")

			return runAnalyzeCommand(cfg, companyName, pipeline.Options{
				DaysBack:    daysBack,
				MaxArticles: maxArticles,
			}, save)
		},
	}

	cmd.Flags().Int("days-back", 0, "Lookback window in days (configured default if omitted)")
	cmd.Flags().Int("max-articles", 0, "Maximum articles to analyze (configured default if omitted)")
	cmd.Flags().Bool("save", false, "Save the analysis result as JSON under the results directory")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Financial Sentiment Analyst v1.0.0")
			fmt.Println("News sentiment aggregation powered by Large Language Models")
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfg)
		},
	})

	return configCmd
}

// runAnalyzeCommand executes the full analysis workflow and renders the
// outcome. The three sentinel outcomes get their own rendering instead of a
// generic failure message.
func runAnalyzeCommand(cfg *config.Config, companyName string, opts pipeline.Options, save bool) error {
	ctx := context.Background()

	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return fmt.Errorf("company name is required")
	}

	if err := cfg.ValidateKeys(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	if cfg.EinoDebugEnabled {
		debugger := debug.NewEinoDebugger(cfg)
		if err := debugger.Start(); err != nil {
			logrus.WithError(err).Warn("Debug server failed to start")
		}
	}

	chatModel, err := analyzer.NewChatModel(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM: %w", err)
	}

	daysBack := opts.DaysBack
	if daysBack <= 0 {
		daysBack = cfg.DaysBack
	}

	fmt.Printf("🔄 Analyzing news sentiment for %s (last %d days)...\n", companyName, daysBack)

	p := pipeline.New(cfg, analyzer.NewChatGenerator(chatModel))
	result, err := p.Run(ctx, companyName, opts)

	d := display.NewReportDisplay()
	switch {
	case errors.Is(err, pipeline.ErrTickerNotFound):
		d.ShowTickerNotFound(companyName)
		return nil
	case errors.Is(err, pipeline.ErrNoArticles):
		d.ShowNoArticles(result, daysBack)
		return nil
	case errors.Is(err, pipeline.ErrNoJudgments):
		d.ShowNoJudgments(result)
		return nil
	case err != nil:
		d.ShowError(err)
		return err
	}

	d.ShowResult(result)

	if save {
		filename := fmt.Sprintf("%s_%s.json", strings.ReplaceAll(result.Ticker, ".", "_"), time.Now().Format("20060102_150405"))
		path := filepath.Join(cfg.ResultsDir, filename)
		if err := dataflows.SaveDataToFile(result, path); err != nil {
			logrus.WithError(err).Warn("Failed to save result")
		} else {
			fmt.Printf("💾 Result saved to %s\n", path)
		}
	}

	return nil
}

// showConfig displays the current configuration
func showConfig(cfg *config.Config) {
	fmt.Println("📋 Current Configuration:")
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("Project Directory:    %s\n", cfg.ProjectDir)
	fmt.Printf("Results Directory:    %s\n", cfg.ResultsDir)
	fmt.Printf("Cache Directory:      %s\n", cfg.DataCacheDir)
	fmt.Println()
	fmt.Printf("LLM Provider:         %s\n", cfg.LLMProvider)
	fmt.Printf("LLM Model:            %s\n", cfg.LLMModel)
	fmt.Printf("Backend URL:          %s\n", cfg.BackendURL)
	fmt.Println()
	fmt.Printf("Max Articles:         %d\n", cfg.MaxArticles)
	fmt.Printf("Days Back:            %d\n", cfg.DaysBack)
	fmt.Printf("Min Request Interval: %s\n", cfg.MinRequestInterval)
	fmt.Println()
	fmt.Printf("Cache Enabled:        %t\n", cfg.CacheEnabled)
	fmt.Printf("Debug Mode:           %t\n", cfg.Debug)
	fmt.Printf("Eino Debug:           %t\n", cfg.EinoDebugEnabled)
	if cfg.EinoDebugEnabled {
		fmt.Printf("Debug URL:            http://localhost:%d\n", cfg.EinoDebugPort)
	}
	fmt.Println()

	fmt.Println("🔌 API Configuration:")
	fmt.Println("─────────────────────")
	printKeyStatus("NewsAPI", cfg.NewsAPIKey)
	printKeyStatus("OpenAI", cfg.OpenAIAPIKey)
	printKeyStatus("DeepSeek", cfg.DeepSeekAPIKey)
	if cfg.LongportAppKey != "" && cfg.LongportAppSecret != "" && cfg.LongportAccessToken != "" {
		fmt.Println("Longport API:         ✅ Configured")
	} else {
		fmt.Println("Longport API:         ❌ Not configured (optional)")
	}
}

func printKeyStatus(name, key string) {
	label := fmt.Sprintf("%s API:", name)
	if key != "" {
		fmt.Printf("%-22s✅ Configured\n", label)
	} else {
		fmt.Printf("%-22s❌ Not configured\n", label)
	}
}

// validateConfig validates the configuration and API keys
func validateConfig(cfg *config.Config) error {
	fmt.Println("🔍 Validating Configuration...")
	fmt.Println("═══════════════════════════════════════")

	fmt.Print("📁 Checking directories... ")
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Println("❌")
		return fmt.Errorf("directory validation failed: %w", err)
	}
	fmt.Println("✅")

	fmt.Print("🔑 Checking API keys... ")
	if err := cfg.ValidateKeys(); err != nil {
		fmt.Println("❌")
		fmt.Printf("  %v\n", err)
		fmt.Println()
		fmt.Println("💡 Tips:")
		fmt.Println("  • Set NEWS_API_KEY for news retrieval (https://newsapi.org)")
		fmt.Println("  • Set DEEPSEEK_API_KEY or OPENAI_API_KEY for sentiment classification")
		return err
	}
	fmt.Println("✅")

	fmt.Print("⚙️  Checking analysis settings... ")
	if cfg.MaxArticles < 1 || cfg.MaxArticles > 50 {
		fmt.Println("❌")
		return fmt.Errorf("max articles must be between 1 and 50")
	}
	if cfg.DaysBack < 1 || cfg.DaysBack > 30 {
		fmt.Println("❌")
		return fmt.Errorf("days back must be between 1 and 30")
	}
	fmt.Println("✅")

	fmt.Println()
	fmt.Println("✅ Configuration validation completed successfully!")
	return nil
}
