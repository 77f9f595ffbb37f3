package models

import "time"

type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"total_pages,omitempty"`
}

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type FolderRequest struct {
	Title       string `json:"title" validate:"required,trimmed"`
	Description string `json:"description" validate:"required,trimmed"`
}

type FileRequest struct {
	FolderID    string       `json:"folderId" validate:"required"`
	Title       string       `json:"title" validate:"required,trimmed"`
	Description string       `json:"description" validate:"required,trimmed"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments" validate:"dive"`
	SourceLinks []SourceLink `json:"sourceLinks"`
}

// FileDetails is the read-only details payload: the file plus its
// content rendered to HTML.
type FileDetails struct {
	*File
	ContentHTML string `json:"contentHtml,omitempty"`
}
