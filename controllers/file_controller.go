package controllers

import (
	"errors"

	"eduhub/models"
	"eduhub/services"
	"eduhub/utils"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	fileService *services.FileService
}

func NewFileController() *FileController {
	return &FileController{
		fileService: services.NewFileService(),
	}
}

// GetFile returns a file with rendered content for the details view
func (fc *FileController) GetFile(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	fileID := c.Param("id")
	if !utils.IsValidObjectID(fileID) {
		utils.BadRequestResponse(c, "Invalid file ID")
		return
	}

	objID, _ := utils.StringToObjectID(fileID)
	details, err := fc.fileService.GetFile(category.Slug, objID)
	if err != nil {
		utils.NotFoundResponse(c, "File not found")
		return
	}

	utils.SuccessResponse(c, "File retrieved successfully", details)
}

// CreateFile creates a file inside a folder of the bound category
func (fc *FileController) CreateFile(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	sourceLinks, err := utils.ValidateFilePayload(&req)
	if err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	file, err := fc.fileService.CreateFile(category.Slug, user.Creator(), &req, sourceLinks)
	if err != nil {
		if errors.Is(err, services.ErrFolderNotFound) {
			utils.NotFoundResponse(c, "Folder not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create file")
		return
	}

	utils.CreatedResponse(c, "File created successfully", file)
}

// UpdateFile replaces a file's editable fields
func (fc *FileController) UpdateFile(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	fileID := c.Param("id")
	if !utils.IsValidObjectID(fileID) {
		utils.BadRequestResponse(c, "Invalid file ID")
		return
	}

	var req models.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	sourceLinks, err := utils.ValidateFilePayload(&req)
	if err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	objID, _ := utils.StringToObjectID(fileID)
	file, err := fc.fileService.UpdateFile(category.Slug, objID, &req, sourceLinks)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			utils.NotFoundResponse(c, "File not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update file")
		return
	}

	utils.SuccessResponse(c, "File updated successfully", file)
}

// DeleteFile deletes a file
func (fc *FileController) DeleteFile(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	fileID := c.Param("id")
	if !utils.IsValidObjectID(fileID) {
		utils.BadRequestResponse(c, "Invalid file ID")
		return
	}

	objID, _ := utils.StringToObjectID(fileID)
	if err := fc.fileService.DeleteFile(category.Slug, objID); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			utils.NotFoundResponse(c, "File not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete file")
		return
	}

	utils.SuccessResponse(c, "File deleted successfully", nil)
}
