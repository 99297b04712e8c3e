package root

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/program"
	"pkg.festserve.dev/festserve-cli/common/printer"
)

const (
	snapshotTimeFormat = "2006-01-02 15:04"
	dividerWidth       = 40
)

// Campaigns prints one line per campaign in server order. Without Strict a
// failed fetch prints an empty list, the same as the interactive screen.
func (h *Handler) Campaigns(ctx context.Context, flags models.ListCampaignsFlags) error {
	if err := h.gate.Require(); err != nil {
		return err
	}

	var campaigns []models.Campaign
	err := program.RunProgram(ctx, func(p program.Program, ctx context.Context) error {
		p.Send(program.StatusMsg("Fetching campaigns..."))
		if !flags.Strict {
			campaigns = h.campaignService.ListOrEmpty(ctx)
			return nil
		}
		var err error
		campaigns, err = h.campaignService.List(ctx)
		return err
	})
	if err != nil {
		return eris.Wrap(err, "failed to fetch campaigns")
	}

	printer.NewLine(1)
	printer.Headerln("  Campaigns  ")
	for _, c := range campaigns {
		printer.Infoln(c.Label())
	}
	return nil
}

func (h *Handler) ShowCampaign(ctx context.Context, flags models.ShowCampaignFlags) error {
	if err := h.gate.Require(); err != nil {
		return err
	}

	var report models.CampaignReport
	err := program.RunProgram(ctx, func(p program.Program, ctx context.Context) error {
		p.Send(program.StatusMsg("Fetching campaign " + flags.ID + "..."))
		var err error
		report, err = h.campaignService.Report(ctx, flags.ID)
		return err
	})
	if err != nil {
		return err
	}

	printCampaignReport(report)
	return nil
}

func printCampaignReport(report models.CampaignReport) {
	c := report.Campaign
	printer.NewLine(1)
	printer.Headerln("  Campaign " + c.CampaignID + "  ")
	printer.Infof("Product:         %s\n", c.ProductID)
	if c.StallID != "" {
		printer.Infof("Stall:           %s\n", c.StallID)
	}
	if c.Status != "" {
		printer.Infof("Status:          %s\n", c.Status)
	}
	if c.StartDatetime != nil {
		printer.Infof("Starts:          %s\n", c.StartDatetime.Local().Format(time.DateTime))
	}
	if c.EndDatetime != nil {
		printer.Infof("Ends:            %s\n", c.EndDatetime.Local().Format(time.DateTime))
	}
	printer.Infof("Units allocated: %d\n", c.UnitsAllocated)
	printer.Infof("Total scans:     %d\n", report.Scans.TotalScans)
	printer.Infof("Remaining units: %d\n", report.RemainingUnits())

	if len(report.Snapshots) == 0 {
		return
	}
	printer.SectionDivider("-", dividerWidth)
	printer.Headerln("  Snapshots  ")
	for _, s := range report.Snapshots {
		printer.Infof("%s  scans %d  remaining %d\n",
			s.SnapshotTime.Local().Format(snapshotTimeFormat), s.TotalScans, s.RemainingUnits)
	}
}
