package root

import (
	"context"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/program"
	"pkg.festserve.dev/festserve-cli/common/printer"
)

func (h *Handler) WhoAmI(ctx context.Context) error {
	if err := h.gate.Require(); err != nil {
		return err
	}

	var advertiser models.Advertiser
	err := program.RunProgram(ctx, func(p program.Program, ctx context.Context) error {
		p.Send(program.StatusMsg("Fetching account..."))
		var err error
		advertiser, err = h.apiClient.GetMe(ctx)
		return err
	})
	if err != nil {
		return err
	}

	printer.Infof("%s <%s>\n", advertiser.Name, advertiser.ContactEmail)
	printer.Infof("Advertiser ID: %s\n", advertiser.AdvertiserID)
	return nil
}
