package job

import (
	"Warbler/internal/pkg/logger"
	"Warbler/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const mediaCleanupTimeout = 10 * time.Minute

// MediaCleanupJob 清理上传后一直未被推文引用的媒体
type MediaCleanupJob struct {
	mediaService service.MediaService
	orphanTTL    time.Duration
}

func NewMediaCleanupJob(mediaService service.MediaService, orphanTTL time.Duration) *MediaCleanupJob {
	return &MediaCleanupJob{
		mediaService: mediaService,
		orphanTTL:    orphanTTL,
	}
}

func (s *MediaCleanupJob) Run() {
	traceID := "job-media-clean-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	ctx, cancel := context.WithTimeout(ctx, mediaCleanupTimeout)
	defer cancel()

	log.InfoContext(ctx, "start media cleanup job")
	removed, err := s.mediaService.CleanupOrphanMedia(ctx, time.Now().Add(-s.orphanTTL))
	if err != nil {
		log.ErrorContext(ctx, "media cleanup job failed", "err", err, "cleaned_count", removed)
		return
	}
	if removed > 0 {
		log.InfoContext(ctx, "media cleanup job finished", "cleaned_count", removed)
	}
}
