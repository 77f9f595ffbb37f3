package controllers

import (
	"errors"
	"strconv"

	"eduhub/models"
	"eduhub/services"
	"eduhub/utils"

	"github.com/gin-gonic/gin"
)

// FolderController serves the folder surface of every category. The
// category is bound by the route group, so one controller instance
// covers the whole registry.
type FolderController struct {
	folderService *services.FolderService
	fileService   *services.FileService
}

func NewFolderController() *FolderController {
	return &FolderController{
		folderService: services.NewFolderService(),
		fileService:   services.NewFileService(),
	}
}

// GetFolders returns the folders of the bound category. Without a
// page query parameter the whole list is returned, which is what the
// category pages consume.
func (fc *FolderController) GetFolders(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	if page := parsePageParam(c); page > 0 {
		limit := parseLimitParam(c)
		folders, total, err := fc.folderService.GetFoldersPage(category.Slug, page, limit)
		if err != nil {
			utils.InternalServerErrorResponse(c, "Failed to get folders")
			return
		}
		utils.PaginatedResponse(c, "Folders retrieved successfully", folders, page, limit, total)
		return
	}

	folders, err := fc.folderService.GetFolders(category.Slug)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get folders")
		return
	}

	utils.SuccessResponse(c, "Folders retrieved successfully", folders)
}

func parsePageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 0
	}
	return page
}

func parseLimitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		return 20
	}
	return limit
}

// GetFolder returns a specific folder
func (fc *FolderController) GetFolder(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	folderID := c.Param("id")
	if !utils.IsValidObjectID(folderID) {
		utils.BadRequestResponse(c, "Invalid folder ID")
		return
	}

	objID, _ := utils.StringToObjectID(folderID)
	folder, err := fc.folderService.GetFolder(category.Slug, objID)
	if err != nil {
		utils.NotFoundResponse(c, "Folder not found")
		return
	}

	utils.SuccessResponse(c, "Folder retrieved successfully", folder)
}

// CreateFolder creates a new folder in the bound category
func (fc *FolderController) CreateFolder(c *gin.Context) {
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

	var req models.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	folder, err := fc.folderService.CreateFolder(category.Slug, user.Creator(), &req)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create folder")
		return
	}

	utils.CreatedResponse(c, "Folder created successfully", folder)
}

// UpdateFolder updates folder title and description
func (fc *FolderController) UpdateFolder(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	folderID := c.Param("id")
	if !utils.IsValidObjectID(folderID) {
		utils.BadRequestResponse(c, "Invalid folder ID")
		return
	}

	var req models.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	objID, _ := utils.StringToObjectID(folderID)
	folder, err := fc.folderService.UpdateFolder(category.Slug, objID, &req)
	if err != nil {
		if errors.Is(err, services.ErrFolderNotFound) {
			utils.NotFoundResponse(c, "Folder not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update folder")
		return
	}

	utils.SuccessResponse(c, "Folder updated successfully", folder)
}

// DeleteFolder deletes a folder and its files
func (fc *FolderController) DeleteFolder(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	folderID := c.Param("id")
	if !utils.IsValidObjectID(folderID) {
		utils.BadRequestResponse(c, "Invalid folder ID")
		return
	}

	objID, _ := utils.StringToObjectID(folderID)
	if err := fc.folderService.DeleteFolder(category.Slug, objID); err != nil {
		if errors.Is(err, services.ErrFolderNotFound) {
			utils.NotFoundResponse(c, "Folder not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete folder")
		return
	}

	utils.SuccessResponse(c, "Folder deleted successfully", nil)
}

// GetFolderFiles returns the files inside a folder
func (fc *FolderController) GetFolderFiles(c *gin.Context) {
	category, exists := utils.GetCategoryFromContext(c)
	if !exists {
		utils.InternalServerErrorResponse(c, "Category not bound")
		return
	}

	folderID := c.Param("id")
	if !utils.IsValidObjectID(folderID) {
		utils.BadRequestResponse(c, "Invalid folder ID")
		return
	}

	objID, _ := utils.StringToObjectID(folderID)
	if _, err := fc.folderService.GetFolder(category.Slug, objID); err != nil {
		utils.NotFoundResponse(c, "Folder not found")
		return
	}

	files, err := fc.fileService.GetFolderFiles(category.Slug, objID)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get folder files")
		return
	}

	utils.SuccessResponse(c, "Folder files retrieved successfully", files)
}
