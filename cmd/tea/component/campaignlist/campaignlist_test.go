package campaignlist_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pkg.festserve.dev/festserve-cli/cmd/internal/clients/api"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/campaign"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/campaignlist"
)

// loaded runs cmd and returns the LoadedMsg it produced.
func loaded(t *testing.T, cmd tea.Cmd) campaignlist.LoadedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if l, ok := c().(campaignlist.LoadedMsg); ok {
				return l
			}
		}
	}
	l, ok := msg.(campaignlist.LoadedMsg)
	require.True(t, ok, "no LoadedMsg produced")
	return l
}

func TestMountRendersCampaignsInOrder(t *testing.T) {
	t.Parallel()

	campaigns := []models.Campaign{
		{CampaignID: "c1", ProductID: "p1", UnitsAllocated: 5},
		{CampaignID: "c2", ProductID: "p2", UnitsAllocated: 0},
	}
	mockAPI := &api.MockClient{}
	mockAPI.On("GetCampaigns", mock.Anything).Return(campaigns, nil).Once()

	m := campaignlist.New(campaign.NewService(mockAPI).ListOrEmpty)
	m, cmd := m.Mount(t.Context())
	assert.True(t, m.Loading())
	assert.Contains(t, m.View(), "Loading campaigns...")

	m, _ = m.Update(loaded(t, cmd))
	assert.False(t, m.Loading())
	assert.Equal(t, campaigns, m.Campaigns())

	view := m.View()
	assert.Contains(t, view, "p1 - 5")
	assert.Contains(t, view, "p2 - 0")
	assert.Less(t, strings.Index(view, "p1 - 5"), strings.Index(view, "p2 - 0"))
	mockAPI.AssertExpectations(t)
}

func TestFetchFailureRendersEmptyListWithoutError(t *testing.T) {
	t.Parallel()

	for name, err := range map[string]error{
		"unauthorized": api.ErrUnauthorized,
		"malformed":    api.ErrMalformedResponse,
		"server error": &api.StatusError{StatusCode: 500, Status: "500 Internal Server Error"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mockAPI := &api.MockClient{}
			mockAPI.On("GetCampaigns", mock.Anything).Return([]models.Campaign(nil), err).Once()

			m := campaignlist.New(campaign.NewService(mockAPI).ListOrEmpty)
			m, cmd := m.Mount(t.Context())
			m, _ = m.Update(loaded(t, cmd))

			assert.Empty(t, m.Campaigns())
			assert.NotNil(t, m.Campaigns())
			view := m.View()
			assert.NotContains(t, view, "Loading")
			assert.NotContains(t, view, err.Error())
		})
	}
}

func TestStaleResultIsDiscarded(t *testing.T) {
	t.Parallel()

	m := campaignlist.New(func(context.Context) []models.Campaign {
		return []models.Campaign{{ProductID: "p1", UnitsAllocated: 5}}
	})
	m, first := m.Mount(t.Context())
	stale := loaded(t, first)

	m, _ = m.Mount(t.Context())
	require.NotEqual(t, stale.MountID, m.MountID())

	m, _ = m.Update(stale)
	assert.True(t, m.Loading(), "a result from a previous mount must not settle the list")
	assert.Empty(t, m.Campaigns())
}

func TestResultAfterUnmountIsDiscarded(t *testing.T) {
	t.Parallel()

	m := campaignlist.New(func(context.Context) []models.Campaign {
		return []models.Campaign{{ProductID: "p1", UnitsAllocated: 5}}
	})
	m, cmd := m.Mount(t.Context())
	m = m.Unmount()

	m, _ = m.Update(loaded(t, cmd))
	assert.False(t, m.Mounted())
	assert.Empty(t, m.Campaigns())
}

func TestUnmountCancelsFetchContext(t *testing.T) {
	t.Parallel()

	var fetchCtx context.Context
	m := campaignlist.New(func(ctx context.Context) []models.Campaign {
		fetchCtx = ctx
		return nil
	})
	m, cmd := m.Mount(t.Context())
	m = m.Unmount()

	l := loaded(t, cmd)
	require.Error(t, fetchCtx.Err())
	assert.Empty(t, l.Campaigns)
	assert.False(t, m.Loading())
}

func TestEachMountFetchesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	m := campaignlist.New(func(context.Context) []models.Campaign {
		calls++
		return nil
	})
	m, cmd := m.Mount(t.Context())
	m, _ = m.Update(loaded(t, cmd))

	// Further messages never trigger another fetch.
	m, cmd = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, calls)

	_, cmd = m.Mount(t.Context())
	loaded(t, cmd)
	assert.Equal(t, 2, calls)
}
