package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// PromptForCompanyName prompts the user to enter a company name
func PromptForCompanyName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Enter the company name (e.g., Apple Inc, Tesla, Microsoft):",
		Help:    "Use the common or listed company name. It will be resolved to a ticker symbol automatically.",
	}

	err := survey.AskOne(prompt, &name, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		if len(str) == 0 {
			return fmt.Errorf("company name cannot be empty")
		}
		if len(str) > 100 {
			return fmt.Errorf("company name too long (max 100 characters)")
		}
		return nil
	}))

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// PromptForDaysBack prompts the user for the news lookback window
func PromptForDaysBack(defaultDays int) (int, error) {
	var daysStr string
	prompt := &survey.Input{
		Message: "How many days of news coverage to analyze?",
		Help:    "Number of days to look back for news articles (1-30).",
		Default: strconv.Itoa(defaultDays),
	}

	err := survey.AskOne(prompt, &daysStr, survey.WithValidator(intRangeValidator(1, 30)))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(daysStr))
}

// PromptForMaxArticles prompts the user for the article cap
func PromptForMaxArticles(defaultMax int) (int, error) {
	var maxStr string
	prompt := &survey.Input{
		Message: "How many articles should be classified at most?",
		Help:    "Each article costs one LLM call with rate limiting, so larger batches take longer (1-50).",
		Default: strconv.Itoa(defaultMax),
	}

	err := survey.AskOne(prompt, &maxStr, survey.WithValidator(intRangeValidator(1, 50)))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(maxStr))
}

// PromptForConfirmation shows the run summary and asks the user to confirm
func PromptForConfirmation(companyName string, daysBack, maxArticles int) (bool, error) {
	summary := fmt.Sprintf(`
Analysis Configuration Summary:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

🏢 Company:        %s
📅 Lookback:       %d day(s)
📰 Max Articles:   %d

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
`, companyName, daysBack, maxArticles)

	fmt.Println(summary)

	var confirmed bool
	prompt := &survey.Confirm{
		Message: "Proceed with this analysis?",
		Default: true,
	}

	err := survey.AskOne(prompt, &confirmed)
	return confirmed, err
}

// PromptForRestartOrExit prompts the user when an analysis completes
func PromptForRestartOrExit() (bool, error) {
	var choice string
	prompt := &survey.Select{
		Message: "What would you like to do next?",
		Options: []string{
			"Analyze another company",
			"Exit",
		},
		Default: "Analyze another company",
	}

	err := survey.AskOne(prompt, &choice)
	if err != nil {
		return false, err
	}

	return choice == "Analyze another company", nil
}

func intRangeValidator(min, max int) survey.Validator {
	return func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		n, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		return nil
	}
}
