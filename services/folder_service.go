package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduhub/database"
	"eduhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrFolderNotFound = errors.New("folder not found")

type FolderService struct {
	folderCollection *mongo.Collection
	fileCollection   *mongo.Collection
}

func NewFolderService() *FolderService {
	return &FolderService{
		folderCollection: database.GetCollection(database.FoldersCollection),
		fileCollection:   database.GetCollection(database.FilesCollection),
	}
}

// GetFolders returns the folders of a category in creation order.
func (fs *FolderService) GetFolders(category string) ([]models.Folder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := fs.folderCollection.Find(ctx,
		bson.M{"category": category},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	folders := []models.Folder{}
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// GetFoldersPage returns one page of a category's folders in creation
// order, plus the total count for the pagination meta.
func (fs *FolderService) GetFoldersPage(category string, page, limit int) ([]models.Folder, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"category": category}
	total, err := fs.folderCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := fs.folderCollection.Find(ctx, filter,
		options.Find().
			SetSort(bson.M{"created_at": 1}).
			SetSkip(int64((page-1)*limit)).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	folders := []models.Folder{}
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, 0, err
	}
	return folders, int(total), nil
}

// GetFolder returns one folder of a category.
func (fs *FolderService) GetFolder(category string, folderID primitive.ObjectID) (*models.Folder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var folder models.Folder
	err := fs.folderCollection.FindOne(ctx, bson.M{
		"_id":      folderID,
		"category": category,
	}).Decode(&folder)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}
	return &folder, nil
}

// CreateFolder creates a new folder in the category.
func (fs *FolderService) CreateFolder(category string, creator models.CreatorRef, req *models.FolderRequest) (*models.Folder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	folder := &models.Folder{
		ID:          primitive.NewObjectID(),
		Category:    category,
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   creator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := fs.folderCollection.InsertOne(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return folder, nil
}

// UpdateFolder updates a folder's title and description.
func (fs *FolderService) UpdateFolder(category string, folderID primitive.ObjectID, req *models.FolderRequest) (*models.Folder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := fs.folderCollection.UpdateOne(ctx,
		bson.M{"_id": folderID, "category": category},
		bson.M{"$set": bson.M{
			"title":       req.Title,
			"description": req.Description,
			"updated_at":  time.Now(),
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update folder: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrFolderNotFound
	}

	return fs.GetFolder(category, folderID)
}

// DeleteFolder removes a folder and every file inside it. No soft
// delete: the platform has no trash or undo.
func (fs *FolderService) DeleteFolder(category string, folderID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := fs.folderCollection.DeleteOne(ctx, bson.M{"_id": folderID, "category": category})
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrFolderNotFound
	}

	if _, err := fs.fileCollection.DeleteMany(ctx, bson.M{"folder_id": folderID, "category": category}); err != nil {
		return fmt.Errorf("failed to delete folder files: %w", err)
	}
	return nil
}
