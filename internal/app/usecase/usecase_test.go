package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock_app "ytfetch/internal/app/mocks"
	"ytfetch/internal/app/models"
	"ytfetch/internal/auth"
	"ytfetch/internal/utils/errs"
	"ytfetch/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

const testVideoID = "dQw4w9WgXcQ"

var testURL = "https://www.youtube.com/watch?v=" + testVideoID

func defaultConfig() DownloaderConfig {
	return DownloaderConfig{
		MaxUserTasks: 5,
		MaxDuration:  600 * time.Second,
		PresignTTL:   600 * time.Second,
	}
}

func TestDownloaderUsecase_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	tests := []struct {
		name            string
		url             string
		mockSetup       func(*mock_app.MockTaskRepository, *mock_app.MockLauncher)
		expectedOutcome models.SubmitOutcome
		expectedError   error
	}{
		{
			name:          "InvalidURL",
			url:           "https://example.com/watch?v=" + testVideoID,
			expectedError: errs.ErrInvalidURL,
		},
		{
			name: "TaskLimitReached",
			url:  testURL,
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, _ *mock_app.MockLauncher) {
				mockRepo.EXPECT().
					CountTasksByCreator(gomock.Any(), "alice").
					Return(6, nil)
			},
			expectedError: errs.ErrMaxTasksReached,
		},
		{
			name: "NewSubmissionQueued",
			url:  testURL,
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, mockLauncher *mock_app.MockLauncher) {
				mockRepo.EXPECT().
					CountTasksByCreator(gomock.Any(), "alice").
					Return(0, nil)
				mockRepo.EXPECT().
					GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
					Return(nil, errs.ErrTaskNotFound)
				mockRepo.EXPECT().
					GetItemByVideoID(gomock.Any(), testVideoID).
					Return(nil, errs.ErrItemNotFound)
				mockRepo.EXPECT().
					CreateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *models.Item) error {
						assert.Equal(t, testVideoID, item.VideoID)
						assert.Equal(t, "alice", item.CreatedBy)
						assert.Equal(t, testURL, item.OriginalURL)
						return nil
					})
				mockRepo.EXPECT().
					CreateTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task *models.DownloadTask) error {
						assert.Equal(t, models.StateQueued, task.State)
						assert.Equal(t, "alice", task.CreatedBy)
						assert.NotNil(t, task.ItemID)
						return nil
					})
				mockLauncher.EXPECT().
					Launch(testVideoID, gomock.Any()).
					Return(true)
			},
			expectedOutcome: models.OutcomeQueued,
		},
		{
			name: "AssociateExistingItem",
			url:  testURL,
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, _ *mock_app.MockLauncher) {
				mockRepo.EXPECT().
					CountTasksByCreator(gomock.Any(), "alice").
					Return(0, nil)
				mockRepo.EXPECT().
					GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
					Return(nil, errs.ErrTaskNotFound)
				mockRepo.EXPECT().
					GetItemByVideoID(gomock.Any(), testVideoID).
					Return(&models.Item{
						ID:        itemID,
						Name:      "never gonna",
						VideoID:   testVideoID,
						CreatedBy: "bob",
						RemoteKey: "public/" + testVideoID + "/never gonna",
					}, nil)
				mockRepo.EXPECT().
					CreateTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task *models.DownloadTask) error {
						assert.Equal(t, models.StateDone, task.State)
						assert.Equal(t, "never gonna", task.Title)
						require.NotNil(t, task.ItemID)
						assert.Equal(t, itemID, *task.ItemID)
						return nil
					})
			},
			expectedOutcome: models.OutcomeAssociated,
		},
		{
			name: "AlreadyDone",
			url:  testURL,
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, _ *mock_app.MockLauncher) {
				mockRepo.EXPECT().
					CountTasksByCreator(gomock.Any(), "alice").
					Return(1, nil)
				mockRepo.EXPECT().
					GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
					Return(&models.DownloadTask{
						ID:    uuid.New(),
						State: models.StateDone,
					}, nil)
			},
			expectedOutcome: models.OutcomeAlreadyDone,
		},
		{
			name: "ProcessingNotRelaunched",
			url:  testURL,
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, _ *mock_app.MockLauncher) {
				mockRepo.EXPECT().
					CountTasksByCreator(gomock.Any(), "alice").
					Return(1, nil)
				mockRepo.EXPECT().
					GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
					Return(&models.DownloadTask{
						ID:    uuid.New(),
						State: models.StateProcessing,
					}, nil)
			},
			expectedOutcome: models.OutcomeQueued,
		},
		{
			name: "QueuedRelaunched",
			url:  testURL,
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, mockLauncher *mock_app.MockLauncher) {
				mockRepo.EXPECT().
					CountTasksByCreator(gomock.Any(), "alice").
					Return(1, nil)
				mockRepo.EXPECT().
					GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
					Return(&models.DownloadTask{
						ID:    uuid.New(),
						State: models.StateQueued,
					}, nil)
				mockLauncher.EXPECT().
					Launch(testVideoID, gomock.Any()).
					Return(false)
			},
			expectedOutcome: models.OutcomeQueued,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mock_app.NewMockTaskRepository(ctrl)
			mockLauncher := mock_app.NewMockLauncher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo, mockLauncher)
			}

			uc := CreateDownloaderUsecase(mockRepo, nil, nil, mockLauncher, defaultConfig())
			result, err := uc.Download(context.Background(), "alice", tt.url)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOutcome, result.Outcome)
			assert.Equal(t, testVideoID, result.VideoID)
		})
	}
}

func TestDownloaderUsecase_Download_RequeuesErroredTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taskID := uuid.New()

	for _, state := range []models.TaskState{
		models.StateErrorUnknown,
		models.StateErrorTooLong,
		models.StateErrorDownload,
		models.StateErrorNotFound,
	} {
		t.Run(state.String(), func(t *testing.T) {
			mockRepo := mock_app.NewMockTaskRepository(ctrl)
			mockLauncher := mock_app.NewMockLauncher(ctrl)

			mockRepo.EXPECT().
				CountTasksByCreator(gomock.Any(), "alice").
				Return(1, nil)
			mockRepo.EXPECT().
				GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
				Return(&models.DownloadTask{ID: taskID, State: state}, nil)
			mockRepo.EXPECT().
				SetTaskState(gomock.Any(), taskID, models.StateQueued).
				Return(nil)
			mockLauncher.EXPECT().
				Launch(testVideoID, gomock.Any()).
				Return(true)

			uc := CreateDownloaderUsecase(mockRepo, nil, nil, mockLauncher, defaultConfig())
			result, err := uc.Download(context.Background(), "alice", testURL)

			assert.NoError(t, err)
			assert.Equal(t, models.OutcomeQueued, result.Outcome)
		})
	}
}

// syncLaunch makes the launcher mock run the execution inline so the whole
// pipeline finishes before Download returns.
func syncLaunch(mockLauncher *mock_app.MockLauncher) {
	mockLauncher.EXPECT().
		Launch(testVideoID, gomock.Any()).
		DoAndReturn(func(_ string, fn func(ctx context.Context)) bool {
			fn(context.Background())
			return true
		})
}

func TestDownloaderUsecase_Execute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_app.NewMockTaskRepository(ctrl)
	mockExtractor := mock_app.NewMockExtractor(ctrl)
	mockStore := mock_app.NewMockObjectStore(ctrl)
	mockLauncher := mock_app.NewMockLauncher(ctrl)

	taskID := uuid.New()
	itemID := uuid.New()
	item := &models.Item{ID: itemID, VideoID: testVideoID, CreatedBy: "alice"}

	artifactPath := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(artifactPath, []byte("audio"), 0o644))

	remoteKey := fmt.Sprintf("public/%s/a", testVideoID)

	mockRepo.EXPECT().
		CountTasksByCreator(gomock.Any(), "alice").
		Return(1, nil)
	mockRepo.EXPECT().
		GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
		Return(&models.DownloadTask{ID: taskID, State: models.StateQueued, ItemID: &itemID}, nil)
	syncLaunch(mockLauncher)

	mockRepo.EXPECT().
		SetTaskState(gomock.Any(), taskID, models.StateProcessing).
		Return(nil)
	mockRepo.EXPECT().
		GetItemByVideoID(gomock.Any(), testVideoID).
		Return(item, nil)
	mockExtractor.EXPECT().
		Probe(gomock.Any(), testVideoID).
		Return(&models.MediaMetadata{Title: "a", DurationSeconds: 120}, nil)
	mockRepo.EXPECT().
		SetTaskTitle(gomock.Any(), taskID, "a").
		Return(nil)
	mockExtractor.EXPECT().
		Fetch(gomock.Any(), testVideoID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, onProgress func(models.Progress)) (*models.Artifact, error) {
			onProgress(models.Progress{DownloadedBytes: 10, TotalBytes: 1000})
			onProgress(models.Progress{DownloadedBytes: 42, TotalBytes: 1000})
			return &models.Artifact{Name: "a", Path: artifactPath}, nil
		})
	mockRepo.EXPECT().
		SetTaskDownloadedBytes(gomock.Any(), taskID, gomock.Any()).
		Return(nil).
		AnyTimes()
	mockRepo.EXPECT().
		SetItemTotalBytes(gomock.Any(), itemID, int64(1000)).
		Return(nil).
		AnyTimes()
	mockRepo.EXPECT().
		SetItemArtifact(gomock.Any(), itemID, "a", remoteKey).
		Return(nil)
	mockStore.EXPECT().
		Upload(gomock.Any(), artifactPath, remoteKey).
		Return(nil)
	mockRepo.EXPECT().
		FinishTask(gomock.Any(), taskID, "a", models.StateDone).
		Return(nil)

	uc := CreateDownloaderUsecase(mockRepo, mockExtractor, mockStore, mockLauncher, defaultConfig())
	result, err := uc.Download(context.Background(), "alice", testURL)

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeQueued, result.Outcome)

	_, err = os.Stat(artifactPath)
	assert.True(t, errors.Is(err, os.ErrNotExist), "local artifact must be removed after upload")
}

func TestDownloaderUsecase_Execute_TooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_app.NewMockTaskRepository(ctrl)
	mockExtractor := mock_app.NewMockExtractor(ctrl)
	mockLauncher := mock_app.NewMockLauncher(ctrl)

	taskID := uuid.New()
	itemID := uuid.New()

	mockRepo.EXPECT().
		CountTasksByCreator(gomock.Any(), "alice").
		Return(1, nil)
	mockRepo.EXPECT().
		GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
		Return(&models.DownloadTask{ID: taskID, State: models.StateQueued, ItemID: &itemID}, nil)
	syncLaunch(mockLauncher)

	mockRepo.EXPECT().
		SetTaskState(gomock.Any(), taskID, models.StateProcessing).
		Return(nil)
	mockRepo.EXPECT().
		GetItemByVideoID(gomock.Any(), testVideoID).
		Return(&models.Item{ID: itemID, VideoID: testVideoID}, nil)
	mockExtractor.EXPECT().
		Probe(gomock.Any(), testVideoID).
		Return(&models.MediaMetadata{Title: "a", DurationSeconds: 601}, nil)
	mockRepo.EXPECT().
		SetTaskState(gomock.Any(), taskID, models.StateErrorTooLong).
		Return(nil)

	uc := CreateDownloaderUsecase(mockRepo, mockExtractor, nil, mockLauncher, defaultConfig())
	_, err := uc.Download(context.Background(), "alice", testURL)
	assert.NoError(t, err)
}

func TestDownloaderUsecase_Execute_FetchFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		fetchError    error
		expectedState models.TaskState
		resetsBytes   bool
	}{
		{
			name:          "VideoUnavailable",
			fetchError:    fmt.Errorf("extract %s: %w", testVideoID, errs.ErrVideoUnavailable),
			expectedState: models.StateErrorNotFound,
		},
		{
			name:          "DownloadFailed",
			fetchError:    fmt.Errorf("extract %s: %w", testVideoID, errs.ErrDownloadFailed),
			expectedState: models.StateErrorDownload,
		},
		{
			name:          "UnknownFailure",
			fetchError:    errors.New("disk full"),
			expectedState: models.StateErrorUnknown,
			resetsBytes:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mock_app.NewMockTaskRepository(ctrl)
			mockExtractor := mock_app.NewMockExtractor(ctrl)
			mockLauncher := mock_app.NewMockLauncher(ctrl)

			taskID := uuid.New()
			itemID := uuid.New()

			mockRepo.EXPECT().
				CountTasksByCreator(gomock.Any(), "alice").
				Return(1, nil)
			mockRepo.EXPECT().
				GetTaskByCreatorAndVideoID(gomock.Any(), "alice", testVideoID).
				Return(&models.DownloadTask{ID: taskID, State: models.StateQueued, ItemID: &itemID}, nil)
			syncLaunch(mockLauncher)

			mockRepo.EXPECT().
				SetTaskState(gomock.Any(), taskID, models.StateProcessing).
				Return(nil)
			mockRepo.EXPECT().
				GetItemByVideoID(gomock.Any(), testVideoID).
				Return(&models.Item{ID: itemID, VideoID: testVideoID}, nil)
			mockExtractor.EXPECT().
				Probe(gomock.Any(), testVideoID).
				Return(&models.MediaMetadata{Title: "a", DurationSeconds: 120}, nil)
			mockRepo.EXPECT().
				SetTaskTitle(gomock.Any(), taskID, "a").
				Return(nil)
			mockExtractor.EXPECT().
				Fetch(gomock.Any(), testVideoID, gomock.Any()).
				Return(nil, tt.fetchError)
			mockRepo.EXPECT().
				SetTaskState(gomock.Any(), taskID, tt.expectedState).
				Return(nil)
			if tt.resetsBytes {
				mockRepo.EXPECT().
					SetTaskDownloadedBytes(gomock.Any(), taskID, int64(0)).
					Return(nil)
			}

			uc := CreateDownloaderUsecase(mockRepo, mockExtractor, nil, mockLauncher, defaultConfig())
			_, err := uc.Download(context.Background(), "alice", testURL)
			assert.NoError(t, err)
		})
	}
}

func TestDownloaderUsecase_ListTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_app.NewMockTaskRepository(ctrl)

	taskID := uuid.New()
	downloaded := int64(42)
	total := int64(1000)

	mockRepo.EXPECT().
		ListTasksByCreator(gomock.Any(), "alice").
		Return([]*models.TaskWithItem{
			{
				DownloadTask: models.DownloadTask{
					ID:              taskID,
					URL:             testURL,
					Title:           "a",
					State:           models.StateProcessing,
					DownloadedBytes: &downloaded,
				},
				ItemTotalBytes: &total,
			},
		}, nil)

	uc := CreateDownloaderUsecase(mockRepo, nil, nil, nil, defaultConfig())
	out, err := uc.ListTasks(context.Background(), "alice")

	assert.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, taskID, out[0].ID)
	assert.Equal(t, models.StateProcessing, out[0].State)
	assert.Equal(t, &downloaded, out[0].DownloadedBytes)
	assert.Equal(t, &total, out[0].TotalBytes)
	assert.Equal(t, "a", out[0].Title)
}

func TestDownloaderUsecase_RetrieveLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taskID := uuid.New()
	remoteKey := "public/" + testVideoID + "/a"

	tests := []struct {
		name          string
		mockSetup     func(*mock_app.MockTaskRepository, *mock_app.MockObjectStore)
		expectedLink  string
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, mockStore *mock_app.MockObjectStore) {
				mockRepo.EXPECT().
					GetTaskByID(gomock.Any(), taskID, "alice").
					Return(&models.TaskWithItem{
						DownloadTask:  models.DownloadTask{ID: taskID, State: models.StateDone},
						ItemRemoteKey: &remoteKey,
					}, nil)
				mockStore.EXPECT().
					PresignGet(gomock.Any(), remoteKey, 600*time.Second).
					Return("https://bucket.example/signed", nil)
			},
			expectedLink: "https://bucket.example/signed",
		},
		{
			name: "TaskNotFound",
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, _ *mock_app.MockObjectStore) {
				mockRepo.EXPECT().
					GetTaskByID(gomock.Any(), taskID, "alice").
					Return(nil, errs.ErrTaskNotFound)
			},
			expectedError: errs.ErrTaskNotFound,
		},
		{
			name: "NoArtifactYet",
			mockSetup: func(mockRepo *mock_app.MockTaskRepository, _ *mock_app.MockObjectStore) {
				mockRepo.EXPECT().
					GetTaskByID(gomock.Any(), taskID, "alice").
					Return(&models.TaskWithItem{
						DownloadTask: models.DownloadTask{ID: taskID, State: models.StateProcessing},
					}, nil)
			},
			expectedError: errs.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mock_app.NewMockTaskRepository(ctrl)
			mockStore := mock_app.NewMockObjectStore(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo, mockStore)
			}

			uc := CreateDownloaderUsecase(mockRepo, nil, mockStore, nil, defaultConfig())
			link, err := uc.RetrieveLink(context.Background(), "alice", taskID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedLink, link)
		})
	}
}

func TestUserUsecase_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		username      string
		password      string
		mockSetup     func(*mock_app.MockUserRepository)
		expectedError error
	}{
		{
			name:     "Success",
			username: "alice",
			password: "correct-horse",
			mockSetup: func(mockRepo *mock_app.MockUserRepository) {
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), "alice", gomock.Any()).
					Return(&models.User{Username: "alice"}, nil)
			},
		},
		{
			name:          "UsernameTooShort",
			username:      "al",
			password:      "correct-horse",
			expectedError: errs.ErrInvalidUsername,
		},
		{
			name:          "PasswordTooShort",
			username:      "alice",
			password:      "short",
			expectedError: errs.ErrInvalidPassword,
		},
		{
			name:     "DuplicateUsername",
			username: "alice",
			password: "correct-horse",
			mockSetup: func(mockRepo *mock_app.MockUserRepository) {
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), "alice", gomock.Any()).
					Return(nil, errs.ErrUserAlreadyExists)
			},
			expectedError: errs.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mock_app.NewMockUserRepository(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			uc := CreateUserUsecase(mockRepo, auth.NewTokenManager("secret"))
			err := uc.Register(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserUsecase_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		mockSetup     func(*mock_app.MockUserRepository)
		expectedError error
	}{
		{
			name:     "Success",
			password: "correct-horse",
			mockSetup: func(mockRepo *mock_app.MockUserRepository) {
				mockRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "alice").
					Return(&models.User{Username: "alice", PasswordHash: hash}, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "incorrect-horse",
			mockSetup: func(mockRepo *mock_app.MockUserRepository) {
				mockRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "alice").
					Return(&models.User{Username: "alice", PasswordHash: hash}, nil)
			},
			expectedError: errs.ErrInvalidLogin,
		},
		{
			name:     "UnknownUser",
			password: "correct-horse",
			mockSetup: func(mockRepo *mock_app.MockUserRepository) {
				mockRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "alice").
					Return(nil, errs.ErrUserNotFound)
			},
			expectedError: errs.ErrInvalidLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mock_app.NewMockUserRepository(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			uc := CreateUserUsecase(mockRepo, auth.NewTokenManager("secret"))
			token, err := uc.Login(context.Background(), "alice", tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}
