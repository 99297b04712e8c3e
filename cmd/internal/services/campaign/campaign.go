package campaign

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"pkg.festserve.dev/festserve-cli/cmd/internal/clients/api"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/common/logger"
)

var _ ServiceInterface = (*Service)(nil)

type ServiceInterface interface {
	List(ctx context.Context) ([]models.Campaign, error)
	ListOrEmpty(ctx context.Context) []models.Campaign
	Report(ctx context.Context, id string) (models.CampaignReport, error)
}

// Service fetches campaigns on behalf of the session whose token the API
// client reads at request time.
type Service struct {
	apiClient api.ClientInterface
}

func NewService(apiClient api.ClientInterface) *Service {
	return &Service{apiClient: apiClient}
}

// List returns the campaigns in server order, or a typed error from the api package.
func (s *Service) List(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.apiClient.GetCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return campaigns, nil
}

// ListOrEmpty treats any failure as "no campaigns". The failure is only
// visible in the debug log.
func (s *Service) ListOrEmpty(ctx context.Context) []models.Campaign {
	campaigns, err := s.List(ctx)
	if err != nil {
		logger.Debugf("campaign fetch failed, showing empty list: %v", err)
		return []models.Campaign{}
	}
	return campaigns
}

// Report fetches a campaign with its scan count and snapshots concurrently.
// The first failure cancels the other requests.
func (s *Service) Report(ctx context.Context, id string) (models.CampaignReport, error) {
	if id == "" {
		return models.CampaignReport{}, api.ErrNoCampaignID
	}

	var report models.CampaignReport
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		campaign, err := s.apiClient.GetCampaign(gctx, id)
		report.Campaign = campaign
		return err
	})
	g.Go(func() error {
		scans, err := s.apiClient.GetCampaignScanCount(gctx, id)
		report.Scans = scans
		return err
	})
	g.Go(func() error {
		snapshots, err := s.apiClient.GetCampaignSnapshots(gctx, id)
		report.Snapshots = snapshots
		return err
	})

	if err := g.Wait(); err != nil {
		return models.CampaignReport{}, eris.Wrapf(err, "failed to build report for campaign %s", id)
	}
	return report, nil
}
