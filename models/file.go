package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment types accepted by the media upload endpoint.
const (
	AttachmentImage = "image"
	AttachmentPDF   = "pdf"
)

// File is a titled content record inside a folder. "File" is the domain
// term: attachments reference media held by the storage backend, the
// record itself never carries binary content.
type File struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category    string             `bson:"category" json:"category"`
	FolderID    primitive.ObjectID `bson:"folder_id" json:"folderId"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Content     string             `bson:"content,omitempty" json:"content,omitempty"`
	Attachments []Attachment       `bson:"attachments" json:"attachments"`
	SourceLinks []SourceLink       `bson:"source_links" json:"sourceLinks"`
	CreatedBy   CreatorRef         `bson:"created_by" json:"createdBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Attachment is a descriptor for media hosted by the storage backend.
type Attachment struct {
	URL         string `bson:"url" json:"url" validate:"required,url"`
	PublicID    string `bson:"public_id" json:"publicId" validate:"required"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Name        string `bson:"name" json:"name" validate:"required"`
	Type        string `bson:"type" json:"type" validate:"required,oneof=image pdf"`
	Size        int64  `bson:"size" json:"size" validate:"gte=0"`
}

// SourceLink is a user-entered external reference.
type SourceLink struct {
	Title       string `bson:"title" json:"title" validate:"max=100"`
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description,omitempty" json:"description,omitempty" validate:"max=200"`
}

// IsEmpty reports whether the link carries no user input at all. Fully
// empty links are dropped at submit time instead of failing validation.
func (l SourceLink) IsEmpty() bool {
	return strings.TrimSpace(l.Title) == "" &&
		strings.TrimSpace(l.URL) == "" &&
		strings.TrimSpace(l.Description) == ""
}

// IsWellFormed reports whether the link has both a title and a
// http(s) URL, which is what the attachment-or-link rule counts.
func (l SourceLink) IsWellFormed() bool {
	if strings.TrimSpace(l.Title) == "" {
		return false
	}
	u := strings.TrimSpace(l.URL)
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
