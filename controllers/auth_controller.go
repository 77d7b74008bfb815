// File: /controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"motolinks-api/middleware"
	"motolinks-api/models"
	"motolinks-api/repositories"
	"motolinks-api/services"
	"motolinks-api/utils"
)

type AuthController struct {
	users        repositories.UserRepository
	tokens       *services.TokenService
	emailService *services.EmailService
	log          *zap.Logger
}

func NewAuthController(users repositories.UserRepository, tokens *services.TokenService, emailService *services.EmailService, log *zap.Logger) *AuthController {
	return &AuthController{
		users:        users,
		tokens:       tokens,
		emailService: emailService,
		log:          log,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Policy checks run in a fixed order so the first violated rule is the
	// one reported: password rules, then username, then email syntax.
	if err := utils.ValidatePassword(req.Password); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateUsername(req.Username); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	switch err := ac.users.Create(&user); err {
	case nil:
	case repositories.ErrDuplicateEmail:
		utils.SendError(c, http.StatusConflict, "Email address already in use")
		return
	case repositories.ErrDuplicateUsername:
		utils.SendError(c, http.StatusConflict, "Username already in use")
		return
	default:
		ac.log.Error("user create failed", zap.Error(err))
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if ac.emailService.Enabled() {
		go ac.emailService.SendWelcomeEmail(user.Email, user.Username)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := ac.users.FindByEmail(req.Email)
	if err != nil {
		ac.log.Error("user lookup failed", zap.Error(err))
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		utils.SendError(c, http.StatusUnauthorized, "Wrong credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.SendError(c, http.StatusUnauthorized, "Wrong credentials")
		return
	}

	access, err := ac.tokens.IssueAccess(user.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	refresh, err := ac.tokens.IssueRefresh(user.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
			"access":   access,
			"refresh":  refresh,
		},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.users.FindByID(middleware.UserID(c))
	if err != nil {
		ac.log.Error("user lookup failed", zap.Error(err))
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User retrieved successfully",
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// RefreshToken mints a new access token. The route is guarded by the refresh
// variant of the auth middleware, so only refresh tokens reach this handler.
func (ac *AuthController) RefreshToken(c *gin.Context) {
	access, err := ac.tokens.IssueAccess(middleware.UserID(c))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"access":  access,
	})
}
