package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub/database"
	"eduhub/models"
	"eduhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrFileNotFound = errors.New("file not found")

type FileService struct {
	fileCollection   *mongo.Collection
	folderCollection *mongo.Collection
}

func NewFileService() *FileService {
	return &FileService{
		fileCollection:   database.GetCollection(database.FilesCollection),
		folderCollection: database.GetCollection(database.FoldersCollection),
	}
}

// GetFolderFiles returns the files of a folder in creation order.
func (fsvc *FileService) GetFolderFiles(category string, folderID primitive.ObjectID) ([]models.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := fsvc.fileCollection.Find(ctx,
		bson.M{"category": category, "folder_id": folderID},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	files := []models.File{}
	if err = cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// GetFile returns one file with its content rendered for the read-only
// details view.
func (fsvc *FileService) GetFile(category string, fileID primitive.ObjectID) (*models.FileDetails, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var file models.File
	err := fsvc.fileCollection.FindOne(ctx, bson.M{
		"_id":      fileID,
		"category": category,
	}).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	contentHTML, err := utils.RenderMarkdown(file.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to render file content: %w", err)
	}

	return &models.FileDetails{File: &file, ContentHTML: contentHTML}, nil
}

// CreateFile creates a file inside a folder. The caller has already
// validated the payload; sourceLinks is the normalized link slice.
func (fsvc *FileService) CreateFile(category string, creator models.CreatorRef, req *models.FileRequest, sourceLinks []models.SourceLink) (*models.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	folderID, err := primitive.ObjectIDFromHex(req.FolderID)
	if err != nil {
		return nil, ErrFolderNotFound
	}

	// The folder must exist in the same category.
	count, err := fsvc.folderCollection.CountDocuments(ctx, bson.M{"_id": folderID, "category": category})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrFolderNotFound
	}

	attachments := req.Attachments
	if attachments == nil {
		attachments = []models.Attachment{}
	}
	if sourceLinks == nil {
		sourceLinks = []models.SourceLink{}
	}

	now := time.Now()
	file := &models.File{
		ID:          primitive.NewObjectID(),
		Category:    category,
		FolderID:    folderID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Attachments: attachments,
		SourceLinks: sourceLinks,
		CreatedBy:   creator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := fsvc.fileCollection.InsertOne(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// UpdateFile replaces a file's editable fields.
func (fsvc *FileService) UpdateFile(category string, fileID primitive.ObjectID, req *models.FileRequest, sourceLinks []models.SourceLink) (*models.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	attachments := req.Attachments
	if attachments == nil {
		attachments = []models.Attachment{}
	}
	if sourceLinks == nil {
		sourceLinks = []models.SourceLink{}
	}

	res, err := fsvc.fileCollection.UpdateOne(ctx,
		bson.M{"_id": fileID, "category": category},
		bson.M{"$set": bson.M{
			"title":        req.Title,
			"description":  req.Description,
			"content":      req.Content,
			"attachments":  attachments,
			"source_links": sourceLinks,
			"updated_at":   time.Now(),
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update file: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrFileNotFound
	}

	var file models.File
	if err := fsvc.fileCollection.FindOne(ctx, bson.M{"_id": fileID}).Decode(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile removes a file.
func (fsvc *FileService) DeleteFile(category string, fileID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := fsvc.fileCollection.DeleteOne(ctx, bson.M{"_id": fileID, "category": category})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrFileNotFound
	}
	return nil
}
