package controllers

import (
	"errors"

	"eduhub/services"
	"eduhub/utils"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	uploadService *services.UploadService
}

func NewMediaController(uploadService *services.UploadService) *MediaController {
	return &MediaController{uploadService: uploadService}
}

// Upload accepts one image or PDF and returns its attachment descriptor
func (mc *MediaController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "A file field is required")
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")

	attachment, err := mc.uploadService.ProcessUpload(fileHeader, title, description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUploadTooLarge):
			utils.ErrorResponse(c, 413, "File exceeds the 10MB upload limit", nil)
		case errors.Is(err, services.ErrUnsupportedUploadType):
			utils.ErrorResponse(c, 415, "Only images and PDF documents can be uploaded", nil)
		default:
			utils.InternalServerErrorResponse(c, "Failed to store upload")
		}
		return
	}

	utils.CreatedResponse(c, "Upload stored successfully", attachment)
}
