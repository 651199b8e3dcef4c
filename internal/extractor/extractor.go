package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"ytfetch/internal/app/models"
	"ytfetch/internal/utils/errs"
	"ytfetch/internal/utils/logger"
)

const progressInterval = 500 * time.Millisecond

// Service adapts yt-dlp to the executor: a metadata probe that downloads
// nothing, and an audio fetch that transcodes to mp3 and streams byte counts
// through the progress callback.
type Service struct {
	downloadDir string
}

func CreateService(downloadDir string) *Service {
	return &Service{
		downloadDir: downloadDir,
	}
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func (s *Service) Probe(ctx context.Context, videoID string) (*models.MediaMetadata, error) {
	const funcName = "Service.Probe"
	logger.Debug("probing video metadata",
		zap.String("function", funcName),
		zap.String("video_id", videoID),
	)

	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON()

	result, err := dl.Run(ctx, watchURL(videoID))
	if err != nil {
		return nil, classifyRunError(err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("extract metadata: %w", err)
	}
	if len(info) == 0 {
		return nil, fmt.Errorf("no metadata extracted for video %s", videoID)
	}

	meta := &models.MediaMetadata{}
	if info[0].Title != nil {
		meta.Title = *info[0].Title
	}
	if info[0].Duration != nil {
		meta.DurationSeconds = int(*info[0].Duration)
	}

	return meta, nil
}

func (s *Service) Fetch(ctx context.Context, videoID string, onProgress func(models.Progress)) (*models.Artifact, error) {
	const funcName = "Service.Fetch"
	logger.Info("starting fetch",
		zap.String("function", funcName),
		zap.String("video_id", videoID),
	)

	dl := ytdlp.New().
		Format("ba").
		ExtractAudio().
		AudioFormat("mp3").
		RestrictFilenames().
		ForceOverwrites().
		Output(filepath.Join(s.downloadDir, "%(title)s.%(ext)s"))

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		if onProgress == nil {
			return
		}
		onProgress(models.Progress{
			DownloadedBytes: int64(update.DownloadedBytes),
			TotalBytes:      int64(update.TotalBytes),
		})
	})

	result, err := dl.Run(ctx, watchURL(videoID))
	if err != nil {
		return nil, classifyRunError(err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("extract download info: %w", err)
	}
	if len(info) == 0 || info[0].Filename == nil {
		return nil, fmt.Errorf("no output file reported for video %s", videoID)
	}

	// The post-processor swaps the container extension for .mp3 after the
	// reported filename is captured.
	path := replaceExt(*info[0].Filename, ".mp3")
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	logger.Info("fetch finished",
		zap.String("function", funcName),
		zap.String("video_id", videoID),
		zap.String("path", path),
	)

	return &models.Artifact{Name: name, Path: path}, nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// classifyRunError translates yt-dlp failures into the executor's error
// taxonomy. A gone upstream resource is distinguished from the remaining
// download failures by the message yt-dlp prints for it.
func classifyRunError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if strings.Contains(err.Error(), "Video unavailable") {
		return fmt.Errorf("%w: %v", errs.ErrVideoUnavailable, err)
	}
	return fmt.Errorf("%w: %v", errs.ErrDownloadFailed, err)
}
