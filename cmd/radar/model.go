package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/review-radar/internal/app"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/review"
	"github.com/sevigo/review-radar/internal/urgency"
)

type model struct {
	styles styles
	radar  *app.App

	viewport viewport.Model
	spinner  spinner.Model

	snapshot  core.Snapshot
	items     []core.TreeItem
	cursor    int
	isLoading bool
	ready     bool

	statusText string
	errText    string
	updatedAt  time.Time
	width      int
	height     int
}

func initialModel(radar *app.App) *model {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:    newStyles(),
		radar:     radar,
		spinner:   sp,
		isLoading: true,
	}
}

func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var spCmd tea.Cmd
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshContent()
		return m, spCmd

	case tea.KeyMsg:
		return m.handleKey(msg, spCmd)

	case snapshotMsg:
		m.isLoading = false
		m.errText = ""
		m.snapshot = msg.snapshot
		m.items = snapshotItems(msg.snapshot)
		m.updatedAt = time.Now()
		if m.cursor >= len(m.items) {
			m.cursor = max(0, len(m.items)-1)
		}
		if len(msg.snapshot.NewItems) > 0 {
			m.statusText = fmt.Sprintf("%d new review request%s",
				len(msg.snapshot.NewItems), plural(len(msg.snapshot.NewItems)))
		}
		m.refreshContent()
		return m, spCmd

	case refreshFailedMsg:
		m.isLoading = false
		m.errText = msg.err.Error()
		m.refreshContent()
		return m, spCmd

	case promptCopiedMsg:
		if msg.err != nil {
			m.errText = fmt.Sprintf("could not copy prompt: %v", msg.err)
		} else {
			m.statusText = fmt.Sprintf("Prompt for %s#%d copied to clipboard", msg.repository, msg.number)
		}
		m.refreshContent()
		return m, spCmd

	case browserOpenedMsg:
		if msg.err != nil {
			m.errText = fmt.Sprintf("could not open browser: %v", msg.err)
			m.refreshContent()
		}
		return m, spCmd
	}

	return m, spCmd
}

func (m *model) handleKey(msg tea.KeyMsg, spCmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.refreshContent()

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.refreshContent()

	case "r":
		m.isLoading = true
		m.statusText = ""
		m.refreshContent()
		return m, tea.Batch(spCmd, refreshCmd(m.radar))

	case "enter", "o":
		if req := m.selectedRequest(); req != nil {
			return m, tea.Batch(spCmd, openBrowserCmd(req.URL))
		}

	case "c":
		if req := m.selectedRequest(); req != nil {
			m.statusText = fmt.Sprintf("Building prompt for %s#%d...", req.Repository, req.Number)
			m.refreshContent()
			return m, tea.Batch(spCmd, copyPromptCmd(m.radar, *req))
		}
	}
	return m, spCmd
}

func (m *model) selectedRequest() *core.ReviewRequest {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	item := m.items[m.cursor]
	if item.Kind != core.TreeItemRequest {
		return nil
	}
	return item.Request
}

func (m *model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderItems())
	// Keep the cursor line visible.
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *model) renderItems() string {
	if len(m.items) == 0 {
		if m.isLoading {
			return m.styles.dim.Render("Fetching review requests...")
		}
		return m.styles.status.Render("No pending review requests. Inbox zero!")
	}

	newSet := make(map[string]struct{}, len(m.snapshot.NewItems))
	for _, req := range m.snapshot.NewItems {
		newSet[fmt.Sprintf("%s#%d", req.Repository, req.Number)] = struct{}{}
	}

	now := time.Now()
	var b strings.Builder
	for i, item := range m.items {
		line := ""
		switch item.Kind {
		case core.TreeItemGroup:
			line = m.styles.group.Render(fmt.Sprintf("%s (%d)", item.Group.Repository, len(item.Group.Requests)))
		case core.TreeItemRequest:
			req := item.Request
			bucket := urgency.Classify(*req, now)
			marker := "  "
			if _, isNew := newSet[fmt.Sprintf("%s#%d", req.Repository, req.Number)]; isNew {
				marker = m.styles.newBadge.Render("● ")
			}
			title := fmt.Sprintf("%s#%-5d %s", marker, req.Number, req.Title)
			meta := m.styles.dim.Render(fmt.Sprintf("  %s · %s",
				req.Author, urgency.TimeAgo(urgency.RelevantTime(*req), now)))
			line = fmt.Sprintf("  %s %s%s", m.styles.bucket(bucket).Render(bucket.Glyph()), title, meta)
		}
		if i == m.cursor {
			line = m.styles.selected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) View() string {
	if !m.ready {
		return "initializing..."
	}

	title := m.styles.header.Render("Review Radar")
	if m.isLoading {
		title += " " + m.spinner.View()
	}

	s := m.snapshot.Summary
	summary := m.styles.summary.Render(fmt.Sprintf(
		"%d pending · %d critical · %d high · %d medium · %d new",
		s.Total, s.Critical, s.High, s.Medium, s.New))

	var status string
	switch {
	case m.errText != "":
		status = m.styles.errLine.Render(m.errText)
	case m.statusText != "":
		status = m.styles.status.Render(m.statusText)
	case !m.updatedAt.IsZero():
		status = m.styles.dim.Render("updated " + m.updatedAt.Format("15:04:05"))
	}

	help := m.styles.footer.Render("↑/↓ move · enter open · c copy prompt · r refresh · q quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s", title, summary, m.viewport.View(), status, help)
}

func refreshCmd(radar *app.App) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := radar.Refresh(context.Background())
		if err != nil {
			return refreshFailedMsg{err: err}
		}
		return snapshotMsg{snapshot: snapshot}
	}
}

func copyPromptCmd(radar *app.App, req core.ReviewRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		rc, err := radar.Gatherer.Gather(ctx, req)
		if err != nil {
			return promptCopiedMsg{repository: req.Repository, number: req.Number, err: err}
		}
		prompt, _, err := review.BuildPrompt(rc)
		if err == nil {
			err = clipboard.WriteAll(prompt)
		}
		return promptCopiedMsg{repository: req.Repository, number: req.Number, err: err}
	}
}
