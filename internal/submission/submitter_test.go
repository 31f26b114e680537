package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/internal/database"
	"github.com/example/srsqueue/internal/queue"
	mock_queue "github.com/example/srsqueue/internal/queue/mock"
	mock_submission "github.com/example/srsqueue/internal/submission/mock"
	"github.com/example/srsqueue/pkg/models"
)

func pendingReviews() []database.PendingReview {
	return []database.PendingReview{
		{ID: 1, GradedReview: models.GradedReview{ItemID: "a", Grade: models.GradeGood, WasDue: true}},
		{ID: 2, GradedReview: models.GradedReview{ItemID: "b", Grade: models.GradeHard}},
		{ID: 5, GradedReview: models.GradedReview{ItemID: "c", Grade: models.GradeEasy, WasDue: true}},
	}
}

func TestSubmitter_Flush(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(*mock_submission.MockReviewSenderI, *mock_submission.MockPendingStoreI, *mock_submission.MockSettlerI)
		wantSent int
		wantErr  bool
	}{
		{
			name: "success",
			setup: func(sender *mock_submission.MockReviewSenderI, store *mock_submission.MockPendingStoreI, settler *mock_submission.MockSettlerI) {
				store.EXPECT().Pending(gomock.Any(), 10).Return(pendingReviews(), nil)
				sender.EXPECT().SubmitReviews(gomock.Any(), gomock.Len(3)).Return(nil)
				store.EXPECT().Delete(gomock.Any(), []int64{1, 2, 5}).Return(nil)
				settler.EXPECT().Settle(2)
			},
			wantSent: 3,
		},
		{
			name: "nothing pending",
			setup: func(sender *mock_submission.MockReviewSenderI, store *mock_submission.MockPendingStoreI, settler *mock_submission.MockSettlerI) {
				store.EXPECT().Pending(gomock.Any(), 10).Return(nil, nil)
			},
		},
		{
			name: "server rejects",
			setup: func(sender *mock_submission.MockReviewSenderI, store *mock_submission.MockPendingStoreI, settler *mock_submission.MockSettlerI) {
				store.EXPECT().Pending(gomock.Any(), 10).Return(pendingReviews(), nil)
				sender.EXPECT().SubmitReviews(gomock.Any(), gomock.Any()).Return(errors.New("502"))
			},
			wantErr: true,
		},
		{
			name: "outbox read fails",
			setup: func(sender *mock_submission.MockReviewSenderI, store *mock_submission.MockPendingStoreI, settler *mock_submission.MockSettlerI) {
				store.EXPECT().Pending(gomock.Any(), 10).Return(nil, errors.New("locked"))
			},
			wantErr: true,
		},
		{
			name: "delete fails after submit",
			setup: func(sender *mock_submission.MockReviewSenderI, store *mock_submission.MockPendingStoreI, settler *mock_submission.MockSettlerI) {
				store.EXPECT().Pending(gomock.Any(), 10).Return(pendingReviews(), nil)
				sender.EXPECT().SubmitReviews(gomock.Any(), gomock.Any()).Return(nil)
				store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("locked"))
			},
			wantSent: 3,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			sender := mock_submission.NewMockReviewSenderI(ctrl)
			store := mock_submission.NewMockPendingStoreI(ctrl)
			settler := mock_submission.NewMockSettlerI(ctrl)
			tt.setup(sender, store, settler)

			s := NewSubmitter(sender, store, settler, 10, zap.NewNop())
			sent, err := s.Flush(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantSent, sent)
		})
	}
}

func TestSubmitter_FlushWithOutbox(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Type: database.TypeSQLite, Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	outbox := database.NewOutbox(db)
	require.NoError(t, outbox.Enqueue(ctx, models.GradedReview{ItemID: "a", Grade: models.GradeGood, SubmittedAt: 1}))
	require.NoError(t, outbox.Enqueue(ctx, models.GradedReview{ItemID: "b", Grade: models.GradeGood, SubmittedAt: 2}))

	ctrl := gomock.NewController(t)
	sender := mock_submission.NewMockReviewSenderI(ctrl)
	expectItem := func(id string) *gomock.Call {
		return sender.EXPECT().SubmitReviews(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reviews []models.GradedReview) error {
				require.Len(t, reviews, 1)
				assert.Equal(t, id, reviews[0].ItemID)
				return nil
			})
	}
	gomock.InOrder(expectItem("a"), expectItem("b"))

	s := NewSubmitter(sender, outbox, nil, 1, zap.NewNop())

	for i := 0; i < 2; i++ {
		sent, err := s.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	}

	n, err := outbox.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	sent, err := s.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestSubmitter_FlushAfterRestartKeepsDueCount(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Type: database.TypeSQLite, Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	// left in the outbox by an earlier run
	outbox := database.NewOutbox(db)
	require.NoError(t, outbox.Enqueue(ctx, models.GradedReview{ItemID: "a", Grade: models.GradeGood, SubmittedAt: 1, WasDue: true}))
	require.NoError(t, outbox.Enqueue(ctx, models.GradedReview{ItemID: "b", Grade: models.GradeGood, SubmittedAt: 2, WasDue: true}))

	ctrl := gomock.NewController(t)
	fetcher := mock_queue.NewMockDueCountFetcherI(ctrl)
	fetcher.EXPECT().DueCount(gomock.Any(), gomock.Any()).Return(models.DueCounts{"defn": {"simp": 5}}, nil).AnyTimes()
	due := queue.NewDueCounter(fetcher, api.DueRequest{Lang: "zh"}, zap.NewNop())

	sender := mock_submission.NewMockReviewSenderI(ctrl)
	sender.EXPECT().SubmitReviews(gomock.Any(), gomock.Len(2)).Return(nil)
	sender.EXPECT().SubmitReviews(gomock.Any(), gomock.Len(1)).Return(nil)

	s := NewSubmitter(sender, outbox, due, 10, zap.NewNop())

	sent, err := s.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	count, err := due.Update(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, 0, due.Offset())

	// a review made by this process still settles
	due.RecordReviewed(1)
	require.NoError(t, outbox.Enqueue(ctx, models.GradedReview{ItemID: "c", Grade: models.GradeGood, SubmittedAt: 3, WasDue: true}))
	assert.Equal(t, 4, due.Count())

	sent, err = s.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, due.Offset())
	assert.Equal(t, 5, due.Count())
}
