package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"user": account}, "User registered successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response_models.AccountLoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	result, err := a.accountService.Login(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/profile [get]
func (a *AccountController) GetProfile(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	account, err := a.accountService.GetProfile(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": account}, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Partial update; omitted fields keep their value
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/profile [put]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	account, err := a.accountService.UpdateProfile(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": account}, "Profile updated successfully")
}

// Logout godoc
// @Summary Revoke the current token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if err := a.accountService.Logout(c.Request.Context(), claims); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out successfully")
}

// GetAllAccounts godoc
// @Summary Get all accounts
// @Description Fetch a paginated list of user accounts, newest first
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(50) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=response_models.AccountListResponse}
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/accounts [get]
func (a *AccountController) GetAllAccounts(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, ok := queryInt(c, "pageSize", services.DefaultPageSize)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	accounts, err := a.accountService.ListAccounts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountListResponse{
		Accounts:   accounts,
		Pagination: response_models.Pagination{Page: page, PageSize: pageSize},
	}, "Accounts fetched successfully")
}
