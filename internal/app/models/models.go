package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskState is the persisted state of a download task. The wire values are
// compact strings so they survive storage backends that only index strings.
type TaskState string

const (
	StateQueued        TaskState = "0"
	StateProcessing    TaskState = "1"
	StateDone          TaskState = "2"
	StateErrorUnknown  TaskState = "3"
	StateErrorTooLong  TaskState = "4"
	StateErrorDownload TaskState = "5"
	StateErrorNotFound TaskState = "6"
)

func (s TaskState) String() string {
	switch s {
	case StateQueued:
		return "QUEUED"
	case StateProcessing:
		return "PROCESSING"
	case StateDone:
		return "DONE"
	case StateErrorUnknown:
		return "ERROR_UNKNOWN"
	case StateErrorTooLong:
		return "ERROR_TOO_LONG"
	case StateErrorDownload:
		return "ERROR_DOWNLOAD"
	case StateErrorNotFound:
		return "ERROR_NOT_FOUND"
	}
	return "UNKNOWN"
}

// IsError reports whether the state is one of the error states that a
// resubmission resets back to QUEUED.
func (s TaskState) IsError() bool {
	switch s {
	case StateErrorUnknown, StateErrorTooLong, StateErrorDownload, StateErrorNotFound:
		return true
	}
	return false
}

// IsTerminal reports whether no further pipeline execution happens without an
// explicit resubmission.
func (s TaskState) IsTerminal() bool {
	return s == StateDone || s.IsError()
}

type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Item is the content-level record shared by every user who requested the
// same video id. At most one Item exists per video id.
type Item struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	VideoID       string    `db:"video_id"`
	CreatedBy     string    `db:"created_by_username"`
	CreatedAt     time.Time `db:"created_at"`
	OriginalURL   string    `db:"original_url"`
	OriginalQuery string    `db:"original_query"`
	RemoteKey     string    `db:"remote_key"`
	TotalBytes    *int64    `db:"total_bytes"`
}

// DownloadTask is one user's request to materialize an Item.
type DownloadTask struct {
	ID              uuid.UUID  `db:"id"`
	CreatedBy       string     `db:"created_by"`
	CreatedAt       time.Time  `db:"created_at"`
	URL             string     `db:"url"`
	Title           string     `db:"title"`
	State           TaskState  `db:"state"`
	DownloadedBytes *int64     `db:"downloaded_bytes"`
	ItemID          *uuid.UUID `db:"item_id"`
}

// TaskWithItem joins a task with its (possibly absent) item for listing.
type TaskWithItem struct {
	DownloadTask
	ItemTotalBytes *int64  `db:"item_total_bytes"`
	ItemRemoteKey  *string `db:"item_remote_key"`
}

// Progress is one byte-count update emitted by the extraction pipeline.
// Updates carry absolute values, so applying the same event twice is a no-op.
type Progress struct {
	DownloadedBytes int64
	TotalBytes      int64
}

// MediaMetadata is what a probe learns about a video without downloading it.
type MediaMetadata struct {
	Title           string
	DurationSeconds int
}

// Artifact describes the finished transcode on local disk. Name is the
// display name, Path the file the pipeline produced.
type Artifact struct {
	Name string
	Path string
}

type SubmitOutcome int

const (
	// OutcomeQueued means a task execution was queued or re-queued.
	OutcomeQueued SubmitOutcome = iota
	// OutcomeAlreadyDone means the task is DONE and nothing was executed.
	OutcomeAlreadyDone
	// OutcomeAssociated means another user already fetched the item and the
	// new task was bound to it directly in DONE state.
	OutcomeAssociated
)

type SubmitResult struct {
	Outcome SubmitOutcome
	VideoID string
}

type DownloadRequest struct {
	URL string `json:"url"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TaskOut struct {
	ID              uuid.UUID `json:"id"`
	URL             string    `json:"url"`
	State           TaskState `json:"state"`
	DownloadedBytes *int64    `json:"downloaded_bytes"`
	TotalBytes      *int64    `json:"total_bytes"`
	Title           string    `json:"title"`
}

type UserOut struct {
	Username string `json:"username"`
}
