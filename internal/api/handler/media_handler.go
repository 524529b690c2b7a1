package handler

import (
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/response"
	"Warbler/internal/service"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// 上传字段名，兼容旧客户端使用的 file_media
var mediaFormFields = []string{"file", "file_media"}

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	var file *multipart.FileHeader
	for _, field := range mediaFormFields {
		if f, err := c.FormFile(field); err == nil {
			file = f
			break
		}
	}
	if file == nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	mediaID, err := s.mediaService.UploadMedia(c.Request.Context(), c.GetUint64(consts.CtxUserID), file.Filename, reader, file.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"media_id": mediaID})
}
