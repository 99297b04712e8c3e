package campaignlist

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/tea/style"
)

// FetchFunc loads the campaigns to show. Failures are expected to surface
// as an empty slice.
type FetchFunc func(ctx context.Context) []models.Campaign

// LoadedMsg carries the result of the fetch started by the mount with ID MountID.
type LoadedMsg struct {
	MountID   int
	Campaigns []models.Campaign
}

// Model is the campaign list screen. Each Mount starts exactly one fetch;
// results from an earlier mount are dropped.
type Model struct {
	fetch   FetchFunc
	spinner spinner.Model

	mountID   int
	mounted   bool
	cancel    context.CancelFunc
	loading   bool
	campaigns []models.Campaign
}

func New(fetch FetchFunc) Model {
	return Model{
		fetch:     fetch,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		campaigns: []models.Campaign{},
	}
}

// Mount starts a fresh fetch bound to a context derived from parent.
// The list starts empty.
func (m Model) Mount(parent context.Context) (Model, tea.Cmd) {
	m = m.Unmount()
	ctx, cancel := context.WithCancel(parent)
	m.mountID++
	m.mounted = true
	m.cancel = cancel
	m.loading = true
	m.campaigns = []models.Campaign{}
	return m, tea.Batch(m.spinner.Tick, fetchCmd(ctx, m.fetch, m.mountID))
}

// Unmount cancels the in-flight fetch, if any.
func (m Model) Unmount() Model {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mounted = false
	m.loading = false
	return m
}

func (m Model) Mounted() bool {
	return m.mounted
}

func (m Model) MountID() int {
	return m.mountID
}

func (m Model) Loading() bool {
	return m.loading
}

func (m Model) Campaigns() []models.Campaign {
	return m.campaigns
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if !m.mounted || msg.MountID != m.mountID {
			return m, nil
		}
		m.loading = false
		m.campaigns = msg.Campaigns
		if m.campaigns == nil {
			m.campaigns = []models.Campaign{}
		}
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(style.Header("Campaigns", ""))
	b.WriteString("\n\n")
	if m.loading {
		b.WriteString(m.spinner.View() + " Loading campaigns...")
	}
	for _, c := range m.campaigns {
		b.WriteString(style.TodoIcon.String() + c.Label() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(style.Hint("q: quit"))
	return b.String()
}

func fetchCmd(ctx context.Context, fetch FetchFunc, mountID int) tea.Cmd {
	return func() tea.Msg {
		return LoadedMsg{MountID: mountID, Campaigns: fetch(ctx)}
	}
}
