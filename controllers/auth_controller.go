package controllers

import (
	"errors"

	"eduhub/models"
	"eduhub/services"
	"eduhub/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
	}
}

// Register creates a new student account
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	resp, err := ac.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.ConflictResponse(c, "Email is already registered")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to register")
		return
	}

	utils.CreatedResponse(c, "Registered successfully", resp)
}

// Login verifies credentials and returns a session token
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	resp, err := ac.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, "Invalid email or password")
		case errors.Is(err, services.ErrAccountInactive):
			utils.UnauthorizedResponse(c, "Account is deactivated")
		default:
			utils.InternalServerErrorResponse(c, "Failed to log in")
		}
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", resp)
}

// Me returns the identity behind the x-auth-token header
func (ac *AuthController) Me(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	utils.SuccessResponse(c, "Identity retrieved successfully", user)
}

// SetRole changes a user's role (admin only)
func (ac *AuthController) SetRole(c *gin.Context) {
	userID := c.Param("id")
	if !utils.IsValidObjectID(userID) {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	objID, _ := utils.StringToObjectID(userID)
	if err := ac.authService.SetRole(objID, req.Role); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, "Role updated successfully", nil)
}
