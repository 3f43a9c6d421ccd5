package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"resume-builder/internal/theme"
)

var (
	idStyle   = lipgloss.NewStyle().Bold(true).Width(20)
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Width(22)
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}

func themeLine(t theme.Theme) string {
	c := t.Colors
	kind := "light"
	if t.Dark {
		kind = "dark"
	}
	swatches := strings.Join([]string{
		swatch(c.Background), swatch(c.Text), swatch(c.Primary), swatch(c.Secondary), swatch(c.Accent),
	}, "")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Render(t.ID),
		nameStyle.Render(t.Name),
		swatches,
		" ",
		kindStyle.Render(kind),
	)
}

func newThemesCmd() *cobra.Command {
	var dark, light bool
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the color themes with palette swatches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dark && light {
				return fmt.Errorf("--dark and --light are mutually exclusive")
			}
			w := cmd.OutOrStdout()
			for _, t := range theme.All() {
				if (dark && !t.Dark) || (light && t.Dark) {
					continue
				}
				fmt.Fprintln(w, themeLine(t))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", false, "only dark themes")
	cmd.Flags().BoolVar(&light, "light", false, "only light themes")
	return cmd
}
