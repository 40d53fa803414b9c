package controllers

import (
	"net/http"

	"parts-store/middleware"
	"parts-store/models"
	"parts-store/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register godoc
// @Summary Register new user
// @Description Creates an identity and its storefront account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	result, err := ctrl.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "User registered successfully",
		Data:    result,
	})
}

// Login godoc
// @Summary Login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	result, err := ctrl.userService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// GetAccount godoc
// @Summary Get own account
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /me [get]
func (ctrl *UserController) GetAccount(c *gin.Context) {
	account, err := ctrl.userService.GetAccount(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, "User not found", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Account retrieved successfully",
		Data:    account,
	})
}

// UpdateAccount godoc
// @Summary Update display name
// @Description A null or blank name clears it
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateAccountRequest true "Account"
// @Success 200 {object} models.Response
// @Router /me [patch]
func (ctrl *UserController) UpdateAccount(c *gin.Context) {
	var req models.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	account, err := ctrl.userService.UpdateName(c.Request.Context(), c.GetString(middleware.ContextUserID), req.Name)
	if err != nil {
		respondError(c, "Failed to update account", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Account updated successfully",
		Data:    account,
	})
}

// DeleteAccount godoc
// @Summary Delete own account
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /me [delete]
func (ctrl *UserController) DeleteAccount(c *gin.Context) {
	if err := ctrl.userService.DeleteAccount(c.Request.Context(), c.GetString(middleware.ContextUserID)); err != nil {
		respondError(c, "Failed to delete account", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Account deleted successfully",
	})
}
