package service

import (
	"Warbler/internal/model"
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/storage"
	"Warbler/internal/pkg/util"
	"Warbler/internal/repository"
	"context"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaService interface {
	UploadMedia(ctx context.Context, userID uint64, filename string, file io.ReadSeeker, size int64) (uint64, error)
	CleanupOrphanMedia(ctx context.Context, before time.Time) (int, error)
}

type MediaServiceImpl struct {
	mediaRepo repository.MediaRepo
	tweetRepo repository.TweetRepo
	store     storage.BlobStore
}

// NewMediaService store 为 nil 时上传与清理返回 ErrStorageDisabled
func NewMediaService(mediaRepo repository.MediaRepo, tweetRepo repository.TweetRepo, store storage.BlobStore) MediaService {
	return &MediaServiceImpl{
		mediaRepo: mediaRepo,
		tweetRepo: tweetRepo,
		store:     store,
	}
}

// UploadMedia 只接受图片和视频，返回媒体 ID
func (s *MediaServiceImpl) UploadMedia(ctx context.Context, userID uint64, filename string, file io.ReadSeeker, size int64) (uint64, error) {
	if s.store == nil {
		return 0, ErrStorageDisabled
	}
	contentType, err := util.SniffContentType(file)
	if err != nil {
		return 0, err
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) && !strings.HasPrefix(contentType, consts.MimePrefixVideo) {
		return 0, ErrFileNotSupported
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + path.Ext(filename)
	obj, err := s.store.Put(ctx, objectName, file, size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "media upload failed", "err", err)
		return 0, err
	}

	media := &model.Media{
		UserID:    userID,
		Path:      obj.URL,
		ObjectKey: obj.Key,
		FileType:  contentType,
		Size:      size,
	}
	if err = s.mediaRepo.CreateMedia(ctx, media); err != nil {
		_ = s.store.Delete(ctx, obj.Key)
		return 0, err
	}

	log.InfoContext(ctx, "media upload success", "media_id", media.ID, "type", contentType)
	return media.ID, nil
}

// CleanupOrphanMedia 删除 before 之前上传且没有被任何推文引用的媒体
func (s *MediaServiceImpl) CleanupOrphanMedia(ctx context.Context, before time.Time) (int, error) {
	if s.store == nil {
		return 0, ErrStorageDisabled
	}
	medias, err := s.mediaRepo.GetMediaCreatedBefore(ctx, before)
	if err != nil {
		return 0, err
	}
	if len(medias) == 0 {
		return 0, nil
	}

	referenced, err := s.tweetRepo.ListAttachmentIds(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, m := range medias {
		if _, ok := referenced[m.ID]; ok {
			continue
		}
		if err = s.store.Delete(ctx, m.ObjectKey); err != nil {
			log.WarnContext(ctx, "delete orphan media object failed", "media_id", m.ID, "err", err)
			continue
		}
		if err = s.mediaRepo.DeleteMedia(ctx, m.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
