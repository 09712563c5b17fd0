package ui

import "github.com/charmbracelet/lipgloss"

var (
	gold    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	emerald = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57"))
	cream   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5EED8"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A8C80"))
	prompt  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
)
