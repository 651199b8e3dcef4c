package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ytfetch/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UserExists(ctx context.Context, username string) (bool, error)
}

type TaskRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByVideoID(ctx context.Context, videoID string) (*models.Item, error)
	SetItemTotalBytes(ctx context.Context, itemID uuid.UUID, totalBytes int64) error
	SetItemArtifact(ctx context.Context, itemID uuid.UUID, name, remoteKey string) error

	CreateTask(ctx context.Context, task *models.DownloadTask) error
	GetTaskByCreatorAndVideoID(ctx context.Context, creator, videoID string) (*models.DownloadTask, error)
	GetTaskByID(ctx context.Context, id uuid.UUID, creator string) (*models.TaskWithItem, error)
	ListTasksByCreator(ctx context.Context, creator string) ([]*models.TaskWithItem, error)
	CountTasksByCreator(ctx context.Context, creator string) (int, error)
	SetTaskState(ctx context.Context, id uuid.UUID, state models.TaskState) error
	SetTaskTitle(ctx context.Context, id uuid.UUID, title string) error
	SetTaskDownloadedBytes(ctx context.Context, id uuid.UUID, downloadedBytes int64) error
	FinishTask(ctx context.Context, id uuid.UUID, title string, state models.TaskState) error
}

// Extractor wraps the external extraction/transcode pipeline.
type Extractor interface {
	Probe(ctx context.Context, videoID string) (*models.MediaMetadata, error)
	Fetch(ctx context.Context, videoID string, onProgress func(models.Progress)) (*models.Artifact, error)
}

// ObjectStore uploads artifacts and issues time-limited retrieval links.
// Callers decide retry policy.
type ObjectStore interface {
	Upload(ctx context.Context, localPath, key string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Launcher runs one unit of work per identity in the background. Launch
// reports false when an execution for the identity is already in flight.
type Launcher interface {
	Launch(identity string, fn func(ctx context.Context)) bool
}

type DownloaderUsecase interface {
	Download(ctx context.Context, username, rawURL string) (*models.SubmitResult, error)
	ListTasks(ctx context.Context, username string) ([]models.TaskOut, error)
	RetrieveLink(ctx context.Context, username string, taskID uuid.UUID) (string, error)
}

type UserUsecase interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}
