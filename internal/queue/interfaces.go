package queue

//go:generate mockgen -source=interfaces.go -destination=mock/queue_mock.go -package=mock_queue

import (
	"context"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/pkg/models"
)

// RemoteI is the study server as seen by the queue
type RemoteI interface {
	UpdateQueue(ctx context.Context, lang string) error
	Next(ctx context.Context, req api.NextRequest) (*api.Batch, error)
	ItemDetails(ctx context.Context, req api.DetailRequest) (*api.DetailResponse, error)
	Characters(ctx context.Context, lang string, writings []string) ([]models.Character, error)
	ResetQueue(ctx context.Context, userID, lang string) error
	AddItem(ctx context.Context, req api.AddRequest) (*api.AddResponse, error)
}

// DueCountFetcherI returns the server's due counts
type DueCountFetcherI interface {
	DueCount(ctx context.Context, req api.DueRequest) (models.DueCounts, error)
}

// StoreI persists the local collections
type StoreI interface {
	SaveItems(ctx context.Context, items []models.StudyItem) error
	SaveVocabs(ctx context.Context, vocabs []models.Vocab) error
	SaveCharacters(ctx context.Context, characters []models.Character) error
	Load(ctx context.Context, lang string) (models.Snapshot, error)
}

// OutboxI holds graded reviews until they are submitted
type OutboxI interface {
	Enqueue(ctx context.Context, review models.GradedReview) error
}
