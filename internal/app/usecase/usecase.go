package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ytfetch/internal/app"
	"ytfetch/internal/app/models"
	"ytfetch/internal/auth"
	"ytfetch/internal/utils/errs"
	"ytfetch/internal/utils/logger"
	"ytfetch/internal/utils/validate"
)

type DownloaderConfig struct {
	MaxUserTasks int
	MaxDuration  time.Duration
	PresignTTL   time.Duration
}

// DownloaderUsecase is the task executor: it decides queued/resume/skip on
// submission, drives the extraction pipeline and owns every task state
// transition during execution.
type DownloaderUsecase struct {
	tasks     app.TaskRepository
	extractor app.Extractor
	store     app.ObjectStore
	launcher  app.Launcher
	cfg       DownloaderConfig
}

func CreateDownloaderUsecase(
	tasks app.TaskRepository,
	extractor app.Extractor,
	store app.ObjectStore,
	launcher app.Launcher,
	cfg DownloaderConfig,
) *DownloaderUsecase {
	return &DownloaderUsecase{
		tasks:     tasks,
		extractor: extractor,
		store:     store,
		launcher:  launcher,
		cfg:       cfg,
	}
}

// Download resolves the URL to its video id and applies the submission rules:
// a DONE task is never re-executed, an errored task is re-queued, an item
// fetched by another user is associated without running the pipeline.
func (u *DownloaderUsecase) Download(ctx context.Context, username, rawURL string) (*models.SubmitResult, error) {
	const funcName = "DownloaderUsecase.Download"

	videoID, err := validate.ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	logger.Debug("download submitted",
		zap.String("function", funcName),
		zap.String("username", username),
		zap.String("video_id", videoID),
	)

	count, err := u.tasks.CountTasksByCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if count > u.cfg.MaxUserTasks {
		return nil, fmt.Errorf("%w: limit %d", errs.ErrMaxTasksReached, u.cfg.MaxUserTasks)
	}

	task, err := u.tasks.GetTaskByCreatorAndVideoID(ctx, username, videoID)
	if err != nil {
		if !errors.Is(err, errs.ErrTaskNotFound) {
			return nil, err
		}
		return u.submitNew(ctx, username, rawURL, videoID)
	}

	switch {
	case task.State == models.StateDone:
		return &models.SubmitResult{Outcome: models.OutcomeAlreadyDone, VideoID: videoID}, nil

	case task.State == models.StateQueued:
		u.launch(videoID, task)

	case task.State.IsError():
		if err := u.tasks.SetTaskState(ctx, task.ID, models.StateQueued); err != nil {
			return nil, err
		}
		task.State = models.StateQueued
		u.launch(videoID, task)

	default:
		// PROCESSING: an execution is already in flight, nothing to launch.
	}

	return &models.SubmitResult{Outcome: models.OutcomeQueued, VideoID: videoID}, nil
}

func (u *DownloaderUsecase) submitNew(ctx context.Context, username, rawURL, videoID string) (*models.SubmitResult, error) {
	const funcName = "DownloaderUsecase.submitNew"

	item, err := u.tasks.GetItemByVideoID(ctx, videoID)
	if err != nil && !errors.Is(err, errs.ErrItemNotFound) {
		return nil, err
	}

	if item != nil {
		logger.Debug("item exists, associating without execution",
			zap.String("function", funcName),
			zap.String("username", username),
			zap.String("video_id", videoID),
		)
		task := &models.DownloadTask{
			ID:        uuid.New(),
			CreatedBy: username,
			URL:       rawURL,
			Title:     item.Name,
			State:     models.StateDone,
			ItemID:    &item.ID,
		}
		if err := u.tasks.CreateTask(ctx, task); err != nil {
			return nil, err
		}
		return &models.SubmitResult{Outcome: models.OutcomeAssociated, VideoID: videoID}, nil
	}

	item = &models.Item{
		ID:            uuid.New(),
		VideoID:       videoID,
		CreatedBy:     username,
		OriginalURL:   rawURL,
		OriginalQuery: rawURL,
	}
	if err := u.tasks.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	task := &models.DownloadTask{
		ID:        uuid.New(),
		CreatedBy: username,
		URL:       rawURL,
		State:     models.StateQueued,
		ItemID:    &item.ID,
	}
	if err := u.tasks.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	u.launch(videoID, task)

	return &models.SubmitResult{Outcome: models.OutcomeQueued, VideoID: videoID}, nil
}

func (u *DownloaderUsecase) launch(videoID string, task *models.DownloadTask) {
	launched := u.launcher.Launch(videoID, func(ctx context.Context) {
		u.execute(ctx, videoID, task)
	})
	if !launched {
		logger.Debug("execution already in flight",
			zap.String("function", "DownloaderUsecase.launch"),
			zap.String("video_id", videoID),
		)
	}
}

// execute runs one full pipeline attempt. All failures are classified into a
// terminal task state here; nothing propagates to the submission response.
func (u *DownloaderUsecase) execute(ctx context.Context, videoID string, task *models.DownloadTask) {
	const funcName = "DownloaderUsecase.execute"
	logger.Info("starting task execution",
		zap.String("function", funcName),
		zap.String("task_id", task.ID.String()),
		zap.String("video_id", videoID),
	)

	if err := u.tasks.SetTaskState(ctx, task.ID, models.StateProcessing); err != nil {
		logger.Error("failed to mark task processing",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.Error(err),
		)
		return
	}

	item, err := u.tasks.GetItemByVideoID(ctx, videoID)
	if err != nil {
		u.failTask(ctx, task.ID, err)
		return
	}

	meta, err := u.extractor.Probe(ctx, videoID)
	if err != nil {
		u.failTask(ctx, task.ID, err)
		return
	}

	if meta.DurationSeconds > int(u.cfg.MaxDuration/time.Second) {
		logger.Warn("duration exceeds cap",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.Int("duration_seconds", meta.DurationSeconds),
			zap.Duration("max_duration", u.cfg.MaxDuration),
		)
		u.setState(ctx, task.ID, models.StateErrorTooLong)
		return
	}

	if err := u.tasks.SetTaskTitle(ctx, task.ID, meta.Title); err != nil {
		logger.Warn("failed to set task title",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.Error(err),
		)
	}

	pw := newProgressWriter(ctx, u.tasks, task.ID, item.ID)
	artifact, err := u.extractor.Fetch(ctx, videoID, pw.Send)
	pw.Close()
	if err != nil {
		u.failTask(ctx, task.ID, err)
		return
	}

	remoteKey := fmt.Sprintf("public/%s/%s", videoID, artifact.Name)
	if err := u.tasks.SetItemArtifact(ctx, item.ID, artifact.Name, remoteKey); err != nil {
		u.failTask(ctx, task.ID, err)
		return
	}

	if err := u.store.Upload(ctx, artifact.Path, remoteKey); err != nil {
		u.failTask(ctx, task.ID, err)
		return
	}

	if err := u.tasks.FinishTask(ctx, task.ID, artifact.Name, models.StateDone); err != nil {
		logger.Error("failed to finish task",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.Error(err),
		)
		return
	}

	if err := os.Remove(artifact.Path); err != nil {
		logger.Warn("failed to remove local artifact",
			zap.String("function", funcName),
			zap.String("path", artifact.Path),
			zap.Error(err),
		)
	}

	logger.Info("task execution finished",
		zap.String("function", funcName),
		zap.String("task_id", task.ID.String()),
		zap.String("video_id", videoID),
		zap.String("remote_key", remoteKey),
	)
}

func (u *DownloaderUsecase) failTask(ctx context.Context, taskID uuid.UUID, cause error) {
	const funcName = "DownloaderUsecase.failTask"
	logger.Error("task execution failed",
		zap.String("function", funcName),
		zap.String("task_id", taskID.String()),
		zap.Error(cause),
	)

	state := models.StateErrorUnknown
	switch {
	case errors.Is(cause, errs.ErrVideoUnavailable):
		state = models.StateErrorNotFound
	case errors.Is(cause, errs.ErrDownloadFailed):
		state = models.StateErrorDownload
	}

	u.setState(ctx, taskID, state)

	if state == models.StateErrorUnknown {
		if err := u.tasks.SetTaskDownloadedBytes(ctx, taskID, 0); err != nil {
			logger.Warn("failed to reset downloaded bytes",
				zap.String("function", funcName),
				zap.String("task_id", taskID.String()),
				zap.Error(err),
			)
		}
	}
}

func (u *DownloaderUsecase) setState(ctx context.Context, taskID uuid.UUID, state models.TaskState) {
	if err := u.tasks.SetTaskState(ctx, taskID, state); err != nil {
		logger.Error("failed to set task state",
			zap.String("function", "DownloaderUsecase.setState"),
			zap.String("task_id", taskID.String()),
			zap.String("state", state.String()),
			zap.Error(err),
		)
	}
}

func (u *DownloaderUsecase) ListTasks(ctx context.Context, username string) ([]models.TaskOut, error) {
	tasks, err := u.tasks.ListTasksByCreator(ctx, username)
	if err != nil {
		return nil, err
	}

	out := make([]models.TaskOut, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, models.TaskOut{
			ID:              t.ID,
			URL:             t.URL,
			State:           t.State,
			DownloadedBytes: t.DownloadedBytes,
			TotalBytes:      t.ItemTotalBytes,
			Title:           t.Title,
		})
	}

	return out, nil
}

// RetrieveLink returns a presigned URL for the task's stored artifact.
func (u *DownloaderUsecase) RetrieveLink(ctx context.Context, username string, taskID uuid.UUID) (string, error) {
	task, err := u.tasks.GetTaskByID(ctx, taskID, username)
	if err != nil {
		return "", err
	}

	if task.ItemRemoteKey == nil || *task.ItemRemoteKey == "" {
		return "", errs.ErrItemNotFound
	}

	link, err := u.store.PresignGet(ctx, *task.ItemRemoteKey, u.cfg.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("presign artifact: %w", err)
	}

	return link, nil
}

// UserUsecase covers registration and login.
type UserUsecase struct {
	users  app.UserRepository
	tokens *auth.TokenManager
}

func CreateUserUsecase(users app.UserRepository, tokens *auth.TokenManager) *UserUsecase {
	return &UserUsecase{
		users:  users,
		tokens: tokens,
	}
}

func (u *UserUsecase) Register(ctx context.Context, username, password string) error {
	const funcName = "UserUsecase.Register"

	if err := validate.ValidateUsername(username); err != nil {
		return err
	}
	if err := validate.ValidatePassword(password); err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := u.users.CreateUser(ctx, username, hash); err != nil {
		return err
	}

	logger.Info("user registered",
		zap.String("function", funcName),
		zap.String("username", username),
	)

	return nil
}

func (u *UserUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return "", errs.ErrInvalidLogin
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", errs.ErrInvalidLogin
	}

	return u.tokens.CreateAccessToken(user.Username)
}
