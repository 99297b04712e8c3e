package root

import (
	"context"

	"github.com/rotisserie/eris"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/tea/app"
)

// Interactive runs the full-screen app, starting on the campaign list. The
// router sends the user to the login screen when no session is stored.
func (h *Handler) Interactive(ctx context.Context) error {
	m := app.New(ctx, h.gate, h.authService, h.campaignService, models.RouteCampaigns)
	if _, err := h.runProgram(ctx, m); err != nil {
		return eris.Wrap(err, "failed to run festserve")
	}
	return nil
}
