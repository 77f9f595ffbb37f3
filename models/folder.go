package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Folder groups files within one content category. Category is the
// registry slug, never exposed for cross-category references.
type Folder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category    string             `bson:"category" json:"category"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	CreatedBy   CreatorRef         `bson:"created_by" json:"createdBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
