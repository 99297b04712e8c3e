package api

import (
	"context"
	"net/url"

	"github.com/rotisserie/eris"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
)

const campaignsEndpoint = "/api/campaigns"

// GetCampaigns lists the advertiser's campaigns in server order.
func (c *Client) GetCampaigns(ctx context.Context) ([]models.Campaign, error) {
	body, err := c.sendAuthorized(ctx, get, campaignsEndpoint)
	if err != nil {
		return nil, err
	}
	if err := requireFields(body, "campaign_id", "product_id", "units_allocated"); err != nil {
		return nil, err
	}
	campaigns, err := parseResponse[[]models.Campaign](body)
	if err != nil {
		return nil, err
	}
	for _, campaign := range campaigns {
		if campaign.UnitsAllocated < 0 {
			return nil, eris.Wrapf(ErrMalformedResponse, "campaign %s has negative units_allocated", campaign.CampaignID)
		}
	}
	return campaigns, nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	if id == "" {
		return models.Campaign{}, ErrNoCampaignID
	}
	body, err := c.sendAuthorized(ctx, get, campaignPath(id, ""))
	if err != nil {
		return models.Campaign{}, eris.Wrap(err, "Failed to get campaign")
	}
	if err := requireFields(body, "campaign_id", "product_id", "units_allocated"); err != nil {
		return models.Campaign{}, err
	}
	return parseResponse[models.Campaign](body)
}

func (c *Client) GetCampaignScanCount(ctx context.Context, id string) (models.ScanCount, error) {
	if id == "" {
		return models.ScanCount{}, ErrNoCampaignID
	}
	body, err := c.sendAuthorized(ctx, get, campaignPath(id, "/scans/count"))
	if err != nil {
		return models.ScanCount{}, eris.Wrap(err, "Failed to get scan count")
	}
	if err := requireFields(body, "total_scans"); err != nil {
		return models.ScanCount{}, err
	}
	return parseResponse[models.ScanCount](body)
}

func (c *Client) GetCampaignSnapshots(ctx context.Context, id string) ([]models.Snapshot, error) {
	if id == "" {
		return nil, ErrNoCampaignID
	}
	body, err := c.sendAuthorized(ctx, get, campaignPath(id, "/snapshots"))
	if err != nil {
		return nil, eris.Wrap(err, "Failed to get snapshots")
	}
	return parseResponse[[]models.Snapshot](body)
}

func campaignPath(id, suffix string) string {
	return campaignsEndpoint + "/" + url.PathEscape(id) + suffix
}
