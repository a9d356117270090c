package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kickpresence/kick-presence/internal/config"
)

var (
	bannerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func renderBanner(s config.Settings) string {
	channel := s.Kick.Username
	if strings.TrimSpace(channel) == "" {
		channel = "(no channel configured)"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Kick Presence - Go desktop app for Kick monitoring"),
		"This is a placeholder. Full implementation coming soon.",
		"",
		helpStyle.Render("Kick channel: "+channel),
		helpStyle.Render("Check interval: "+s.Kick.CheckInterval.String()),
	)
	return bannerStyle.Render(body)
}
