package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner() {
	banner := `
███████╗███████╗ █████╗  ██████╗ ███████╗███╗   ██╗████████╗
██╔════╝██╔════╝██╔══██╗██╔════╝ ██╔════╝████╗  ██║╚══██╔══╝
█████╗  ███████╗███████║██║  ███╗█████╗  ██╔██╗ ██║   ██║
██╔══╝  ╚════██║██╔══██║██║   ██║██╔══╝  ██║╚██╗██║   ██║
██║     ███████║██║  ██║╚██████╔╝███████╗██║ ╚████║   ██║
╚═╝     ╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝   ╚═╝

        📰 Financial Sentiment Analyst 📰
`

	welcomeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		Align(lipgloss.Center).
		Width(70).
		MarginBottom(1)

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6")).
		Italic(true).
		Align(lipgloss.Center).
		Width(70).
		MarginBottom(1)

	fmt.Print(welcomeStyle.Render(banner))
	fmt.Println(taglineStyle.Render("News sentiment aggregation powered by Large Language Models"))
	fmt.Println()
}
