package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"ytfetch/internal/app/models"
	"ytfetch/internal/utils/errs"
	"ytfetch/internal/utils/logger"
)

const uniqueViolation = "23505"

const taskColumns = `
	t.id, t.created_by, t.created_at, t.url, t.title, t.state, t.downloaded_bytes, t.item_id,
	i.total_bytes AS item_total_bytes, i.remote_key AS item_remote_key`

type UserRepository struct {
	db *sqlx.DB
}

func CreateUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	const funcName = "UserRepository.CreateUser"

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	query := `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, user.ID, user.Username, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, errs.ErrUserAlreadyExists
		}
		logger.Error("failed to create user",
			zap.String("function", funcName),
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user created",
		zap.String("function", funcName),
		zap.String("username", username),
	)

	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	if err := r.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return exists, nil
}

type TaskRepository struct {
	db *sqlx.DB
}

func CreateTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateItem(ctx context.Context, item *models.Item) error {
	const funcName = "TaskRepository.CreateItem"

	query := `
		INSERT INTO items (id, name, video_id, created_by_username, original_url, original_query, remote_key, total_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		item.ID,
		item.Name,
		item.VideoID,
		item.CreatedBy,
		item.OriginalURL,
		item.OriginalQuery,
		item.RemoteKey,
		item.TotalBytes,
	).Scan(&item.CreatedAt)
	if err != nil {
		logger.Error("failed to create item",
			zap.String("function", funcName),
			zap.String("video_id", item.VideoID),
			zap.Error(err),
		)
		return fmt.Errorf("create item: %w", err)
	}

	logger.Info("item created",
		zap.String("function", funcName),
		zap.String("video_id", item.VideoID),
	)

	return nil
}

func (r *TaskRepository) GetItemByVideoID(ctx context.Context, videoID string) (*models.Item, error) {
	var item models.Item
	query := `
		SELECT id, name, video_id, created_by_username, created_at, original_url, original_query, remote_key, total_bytes
		FROM items
		WHERE video_id = $1`

	err := r.db.GetContext(ctx, &item, query, videoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item by video id: %w", err)
	}

	return &item, nil
}

func (r *TaskRepository) SetItemTotalBytes(ctx context.Context, itemID uuid.UUID, totalBytes int64) error {
	return r.execOne(ctx, errs.ErrItemNotFound,
		`UPDATE items SET total_bytes = $2 WHERE id = $1`, itemID, totalBytes)
}

func (r *TaskRepository) SetItemArtifact(ctx context.Context, itemID uuid.UUID, name, remoteKey string) error {
	return r.execOne(ctx, errs.ErrItemNotFound,
		`UPDATE items SET name = $2, remote_key = $3 WHERE id = $1`, itemID, name, remoteKey)
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *models.DownloadTask) error {
	const funcName = "TaskRepository.CreateTask"

	query := `
		INSERT INTO download_tasks (id, created_by, url, title, state, downloaded_bytes, item_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		task.ID,
		task.CreatedBy,
		task.URL,
		task.Title,
		task.State,
		task.DownloadedBytes,
		task.ItemID,
	).Scan(&task.CreatedAt)
	if err != nil {
		logger.Error("failed to create task",
			zap.String("function", funcName),
			zap.String("created_by", task.CreatedBy),
			zap.Error(err),
		)
		return fmt.Errorf("create task: %w", err)
	}

	logger.Info("task created",
		zap.String("function", funcName),
		zap.String("task_id", task.ID.String()),
		zap.String("created_by", task.CreatedBy),
		zap.String("state", task.State.String()),
	)

	return nil
}

func (r *TaskRepository) GetTaskByCreatorAndVideoID(ctx context.Context, creator, videoID string) (*models.DownloadTask, error) {
	var task models.DownloadTask
	query := `
		SELECT t.id, t.created_by, t.created_at, t.url, t.title, t.state, t.downloaded_bytes, t.item_id
		FROM download_tasks t
		JOIN items i ON i.id = t.item_id
		WHERE t.created_by = $1 AND i.video_id = $2`

	err := r.db.GetContext(ctx, &task, query, creator, videoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task by creator and video id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id uuid.UUID, creator string) (*models.TaskWithItem, error) {
	var task models.TaskWithItem
	query := `
		SELECT ` + taskColumns + `
		FROM download_tasks t
		LEFT JOIN items i ON i.id = t.item_id
		WHERE t.id = $1 AND t.created_by = $2`

	err := r.db.GetContext(ctx, &task, query, id, creator)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepository) ListTasksByCreator(ctx context.Context, creator string) ([]*models.TaskWithItem, error) {
	tasks := make([]*models.TaskWithItem, 0)
	query := `
		SELECT ` + taskColumns + `
		FROM download_tasks t
		LEFT JOIN items i ON i.id = t.item_id
		WHERE t.created_by = $1
		ORDER BY t.created_at`

	if err := r.db.SelectContext(ctx, &tasks, query, creator); err != nil {
		return nil, fmt.Errorf("list tasks by creator: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) CountTasksByCreator(ctx context.Context, creator string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM download_tasks WHERE created_by = $1`

	if err := r.db.GetContext(ctx, &count, query, creator); err != nil {
		return 0, fmt.Errorf("count tasks by creator: %w", err)
	}

	return count, nil
}

func (r *TaskRepository) SetTaskState(ctx context.Context, id uuid.UUID, state models.TaskState) error {
	const funcName = "TaskRepository.SetTaskState"

	err := r.execOne(ctx, errs.ErrTaskNotFound,
		`UPDATE download_tasks SET state = $2 WHERE id = $1`, id, state)
	if err != nil {
		return err
	}

	logger.Debug("task state updated",
		zap.String("function", funcName),
		zap.String("task_id", id.String()),
		zap.String("state", state.String()),
	)

	return nil
}

func (r *TaskRepository) SetTaskTitle(ctx context.Context, id uuid.UUID, title string) error {
	return r.execOne(ctx, errs.ErrTaskNotFound,
		`UPDATE download_tasks SET title = $2 WHERE id = $1`, id, title)
}

func (r *TaskRepository) SetTaskDownloadedBytes(ctx context.Context, id uuid.UUID, downloadedBytes int64) error {
	return r.execOne(ctx, errs.ErrTaskNotFound,
		`UPDATE download_tasks SET downloaded_bytes = $2 WHERE id = $1`, id, downloadedBytes)
}

func (r *TaskRepository) FinishTask(ctx context.Context, id uuid.UUID, title string, state models.TaskState) error {
	const funcName = "TaskRepository.FinishTask"

	err := r.execOne(ctx, errs.ErrTaskNotFound,
		`UPDATE download_tasks SET title = $2, state = $3 WHERE id = $1`, id, title, state)
	if err != nil {
		return err
	}

	logger.Info("task finished",
		zap.String("function", funcName),
		zap.String("task_id", id.String()),
		zap.String("title", title),
		zap.String("state", state.String()),
	)

	return nil
}

func (r *TaskRepository) execOne(ctx context.Context, notFound error, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec update: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
