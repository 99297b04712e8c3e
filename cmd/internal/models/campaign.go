package models

import (
	"strconv"
	"time"
)

type Campaign struct {
	CampaignID     string     `json:"campaign_id"`
	ProductID      string     `json:"product_id"`
	UnitsAllocated int        `json:"units_allocated"`
	StallID        string     `json:"stall_id,omitempty"`
	StartDatetime  *time.Time `json:"start_datetime,omitempty"`
	EndDatetime    *time.Time `json:"end_datetime,omitempty"`
	Status         string     `json:"status,omitempty"`
}

// Label is the one-line rendering used by the list view and the campaigns command.
func (c Campaign) Label() string {
	return c.ProductID + " - " + strconv.Itoa(c.UnitsAllocated)
}

type ScanCount struct {
	CampaignID string `json:"campaign_id"`
	TotalScans int    `json:"total_scans"`
}

type Snapshot struct {
	SnapshotID     string    `json:"snapshot_id"`
	CampaignID     string    `json:"campaign_id"`
	SnapshotTime   time.Time `json:"snapshot_time"`
	TotalScans     int       `json:"total_scans"`
	RemainingUnits int       `json:"remaining_units"`
}

// CampaignReport groups a campaign with its scan count and reporting snapshots.
type CampaignReport struct {
	Campaign  Campaign
	Scans     ScanCount
	Snapshots []Snapshot
}

// RemainingUnits is computed from the live scan count, not from the latest snapshot.
func (r CampaignReport) RemainingUnits() int {
	return r.Campaign.UnitsAllocated - r.Scans.TotalScans
}

type ShowCampaignFlags struct {
	ID string
}

type ListCampaignsFlags struct {
	Strict bool
}
