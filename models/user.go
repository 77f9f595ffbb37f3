package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles reported by the identity endpoint. Mutating content requires
// moderator or admin; the server check is authoritative, clients only
// mirror it for presentation.
const (
	RoleGuest     = "guest"
	RoleStudent   = "student"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"full_name" json:"fullName" validate:"required,min=2,max=100"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Password    string             `bson:"password" json:"-" validate:"required,min=6"`
	Role        string             `bson:"role" json:"role"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	LastLoginAt *time.Time         `bson:"last_login_at,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreatorRef is the denormalized author stamp embedded in folders and files.
type CreatorRef struct {
	ID       primitive.ObjectID `bson:"id" json:"id"`
	FullName string             `bson:"full_name" json:"fullName"`
}

// CanModifyContent reports whether the role may create, edit or delete
// folders and files.
func CanModifyContent(role string) bool {
	return role == RoleAdmin || role == RoleModerator
}

func (u *User) Creator() CreatorRef {
	return CreatorRef{ID: u.ID, FullName: u.FullName}
}
