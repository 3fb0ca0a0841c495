package tracker

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/mocks"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// recordingNotifier captures the signals a refresh cycle emits.
type recordingNotifier struct {
	newBatches    [][]core.ReviewRequest
	notConfigured int
	apiErrors     []error
	sounds        int
}

func (n *recordingNotifier) NewReviews(rs []core.ReviewRequest) core.NotifyAction {
	n.newBatches = append(n.newBatches, rs)
	return core.ActionNone
}
func (n *recordingNotifier) NotConfigured()   { n.notConfigured++ }
func (n *recordingNotifier) APIError(e error) { n.apiErrors = append(n.apiErrors, e) }
func (n *recordingNotifier) PlaySound()       { n.sounds++ }

func request(repo string, number int, age time.Duration) core.ReviewRequest {
	created := fixedNow.Add(-age)
	return core.ReviewRequest{
		Number:     number,
		Repository: repo,
		Title:      "change",
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func newTestTracker(t *testing.T, cfg *config.Config) (*Tracker, *mocks.MockClient, *recordingNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	notifier := &recordingNotifier{}
	tr := New(cfg, client, notifier, slog.New(slog.DiscardHandler))
	tr.SetNow(func() time.Time { return fixedNow })
	return tr, client, notifier
}

func configured() *config.Config {
	return &config.Config{
		Token:             "ghp_test",
		GroupByRepository: true,
		ShowNotifications: true,
	}
}

func TestRefresh_NotConfigured(t *testing.T) {
	cfg := configured()
	cfg.Token = ""
	tr, _, notifier := newTestTracker(t, cfg)

	snap, err := tr.Refresh(context.Background())

	assert.ErrorIs(t, err, core.ErrNotConfigured)
	assert.Equal(t, 1, notifier.notConfigured)
	assert.Empty(t, snap.Requests)
}

func TestRefresh_FirstFetchReportsEverythingNew(t *testing.T) {
	tr, client, notifier := newTestTracker(t, configured())

	fetched := []core.ReviewRequest{
		request("octo/api", 1, time.Hour),
		request("octo/web", 2, time.Hour),
	}
	client.EXPECT().SearchReviewRequested(gomock.Any()).Return(fetched, nil)

	snap, err := tr.Refresh(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.NewItems, 2)
	require.Len(t, notifier.newBatches, 1)
	assert.Len(t, notifier.newBatches[0], 2)
}

func TestRefresh_DeltaIsExactlyTheNewIdentities(t *testing.T) {
	tr, client, _ := newTestTracker(t, configured())

	a := []core.ReviewRequest{request("octo/api", 1, time.Hour)}
	b := []core.ReviewRequest{
		request("octo/api", 1, time.Hour),
		request("octo/api", 2, time.Hour),
		request("octo/web", 1, time.Hour), // same number, different repo: distinct identity
	}
	gomock.InOrder(
		client.EXPECT().SearchReviewRequested(gomock.Any()).Return(a, nil),
		client.EXPECT().SearchReviewRequested(gomock.Any()).Return(b, nil),
		client.EXPECT().SearchReviewRequested(gomock.Any()).Return(b, nil),
	)

	_, err := tr.Refresh(context.Background())
	require.NoError(t, err)

	snap, err := tr.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.NewItems, 2)
	assert.Equal(t, 2, snap.NewItems[0].Number)
	assert.Equal(t, "octo/web", snap.NewItems[1].Repository)

	// Identical result set: empty delta.
	snap, err = tr.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.NewItems)
}

func TestRefresh_FetchErrorKeepsSnapshot(t *testing.T) {
	tr, client, notifier := newTestTracker(t, configured())

	fetched := []core.ReviewRequest{request("octo/api", 1, time.Hour)}
	gomock.InOrder(
		client.EXPECT().SearchReviewRequested(gomock.Any()).Return(fetched, nil),
		client.EXPECT().SearchReviewRequested(gomock.Any()).Return(nil, errors.New("rate limited")),
	)

	_, err := tr.Refresh(context.Background())
	require.NoError(t, err)

	snap, err := tr.Refresh(context.Background())
	assert.Error(t, err)
	assert.Len(t, notifier.apiErrors, 1)
	assert.Len(t, snap.Requests, 1, "previous snapshot must survive a failed fetch")
}

func TestRefresh_RepositoryFilter(t *testing.T) {
	cfg := configured()
	cfg.RepositoryFilter = []string{"octo/api"}
	tr, client, _ := newTestTracker(t, cfg)

	fetched := []core.ReviewRequest{
		request("octo/api", 1, time.Hour),
		request("other/junk", 2, time.Hour),
		request("octo/api", 3, time.Hour),
	}
	client.EXPECT().SearchReviewRequested(gomock.Any()).Return(fetched, nil)

	snap, err := tr.Refresh(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Requests, 2)
	assert.Equal(t, 1, snap.Requests[0].Number, "filter must preserve order")
	assert.Equal(t, 3, snap.Requests[1].Number)
}

func TestRefresh_EmptyFilterIsIdentity(t *testing.T) {
	tr, client, _ := newTestTracker(t, configured())

	fetched := []core.ReviewRequest{
		request("octo/api", 1, time.Hour),
		request("other/junk", 2, time.Hour),
	}
	client.EXPECT().SearchReviewRequested(gomock.Any()).Return(fetched, nil)

	snap, err := tr.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Requests, 2)
}

func TestRefresh_SoundOnlyWhenNotificationsDisabled(t *testing.T) {
	cfg := configured()
	cfg.ShowNotifications = false
	cfg.PlaySound = true
	tr, client, notifier := newTestTracker(t, cfg)

	client.EXPECT().SearchReviewRequested(gomock.Any()).
		Return([]core.ReviewRequest{request("octo/api", 1, time.Hour)}, nil)

	_, err := tr.Refresh(context.Background())
	require.NoError(t, err)

	assert.Empty(t, notifier.newBatches)
	assert.Equal(t, 1, notifier.sounds)
}

func TestRefresh_GroupingToggle(t *testing.T) {
	cfg := configured()
	cfg.GroupByRepository = false
	tr, client, _ := newTestTracker(t, cfg)

	client.EXPECT().SearchReviewRequested(gomock.Any()).
		Return([]core.ReviewRequest{request("octo/api", 1, time.Hour)}, nil)

	snap, err := tr.Refresh(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap.Groups)
	assert.Len(t, snap.Requests, 1)
}
