package root

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"pkg.festserve.dev/festserve-cli/cmd/internal/clients/api"
	"pkg.festserve.dev/festserve-cli/cmd/internal/controllers/gate"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/auth"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/campaign"
)

// Interface guard.
var _ HandlerInterface = (*Handler)(nil)

type HandlerInterface interface {
	Interactive(ctx context.Context) error
	Login(ctx context.Context, flags models.LoginFlags) error
	Logout() error
	Campaigns(ctx context.Context, flags models.ListCampaignsFlags) error
	ShowCampaign(ctx context.Context, flags models.ShowCampaignFlags) error
	WhoAmI(ctx context.Context) error
	Version() error
}

// programRunner runs a full-screen bubbletea model to completion.
type programRunner func(ctx context.Context, model tea.Model) (tea.Model, error)

type Handler struct {
	AppVersion      string
	authService     auth.ServiceInterface
	campaignService campaign.ServiceInterface
	apiClient       api.ClientInterface
	gate            *gate.Gate

	stdin      io.Reader
	runProgram programRunner
}

func NewHandler(
	appVersion string,
	authService auth.ServiceInterface,
	campaignService campaign.ServiceInterface,
	apiClient api.ClientInterface,
	sessionGate *gate.Gate,
) *Handler {
	return &Handler{
		AppVersion:      appVersion,
		authService:     authService,
		campaignService: campaignService,
		apiClient:       apiClient,
		gate:            sessionGate,
		stdin:           os.Stdin,
		runProgram:      runTeaProgram,
	}
}

// SetInput replaces the reader used by --password-stdin.
func (h *Handler) SetInput(r io.Reader) {
	h.stdin = r
}

func runTeaProgram(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithContext(ctx)).Run()
}
