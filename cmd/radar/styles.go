package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/review-radar/internal/urgency"
)

type styles struct {
	header   lipgloss.Style
	summary  lipgloss.Style
	group    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	newBadge lipgloss.Style
	status   lipgloss.Style
	errLine  lipgloss.Style
	footer   lipgloss.Style

	critical lipgloss.Style
	high     lipgloss.Style
	medium   lipgloss.Style
	fresh    lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		summary:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		group:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		item:     lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		newBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		errLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		critical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		high:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		medium:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		fresh:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
}

func (s styles) bucket(b urgency.Bucket) lipgloss.Style {
	switch b {
	case urgency.Critical:
		return s.critical
	case urgency.High:
		return s.high
	case urgency.Medium:
		return s.medium
	default:
		return s.fresh
	}
}
