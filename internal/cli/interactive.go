package cli

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/config"
	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/pipeline"
)

// runInteractiveMode walks the user through configuring and running analyses
// until they choose to exit.
func runInteractiveMode(cfg *config.Config) error {
	DisplayWelcomeBanner()

	if err := cfg.ValidateKeys(); err != nil {
		fmt.Printf("❌ Configuration problem: %v\n", err)
		fmt.Println("   Run 'config validate' for setup tips.")
		return err
	}

	for {
		companyName, err := PromptForCompanyName()
		if err != nil {
			return handlePromptErr(err)
		}

		daysBack, err := PromptForDaysBack(cfg.DaysBack)
		if err != nil {
			return handlePromptErr(err)
		}

		maxArticles, err := PromptForMaxArticles(cfg.MaxArticles)
		if err != nil {
			return handlePromptErr(err)
		}

		confirmed, err := PromptForConfirmation(companyName, daysBack, maxArticles)
		if err != nil {
			return handlePromptErr(err)
		}
		if !confirmed {
			continue
		}

		opts := pipeline.Options{DaysBack: daysBack, MaxArticles: maxArticles}
		if err := runAnalyzeCommand(cfg, companyName, opts, false); err != nil {
			fmt.Printf("❌ Analysis failed: %v\n", err)
		}

		again, err := PromptForRestartOrExit()
		if err != nil {
			return handlePromptErr(err)
		}
		if !again {
			fmt.Println("👋 Thank you for using Financial Sentiment Analyst!")
			return nil
		}
		fmt.Println()
	}
}

// handlePromptErr turns Ctrl-C during a prompt into a clean exit.
func handlePromptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		fmt.Println("\n👋 Goodbye!")
		return nil
	}
	return err
}
