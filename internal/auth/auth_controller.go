package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RohanKadam-7/boxgames/config"
	"github.com/RohanKadam-7/boxgames/internal/common"
	"github.com/RohanKadam-7/boxgames/internal/user"
	"github.com/RohanKadam-7/boxgames/pkg/token"
	"github.com/RohanKadam-7/boxgames/pkg/utils"
)

type AuthController struct {
	repo   UserRepository
	config *config.Config
}

func NewAuthController(repo UserRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a player or owner account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse "Email or username already taken"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	if req.Role == "" {
		req.Role = user.RolePlayer
	}
	if !req.Role.Valid() {
		utils.BadRequestJSON(c, "invalid role")
		return
	}

	email := strings.ToLower(req.Email)
	taken, err := ac.repo.EmailOrUsernameTaken(email, req.Username)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	if taken {
		utils.DomainErrorJSON(c, common.ErrAlreadyExists)
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}

	newUser := &user.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}

	accessToken, err := token.Generate(newUser.Email, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        newUserResponse(newUser),
	})
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	// A missing account and a wrong password produce the same response, so a
	// login attempt cannot probe whether an email is registered.
	u, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil || !utils.CheckPassword(u.PasswordHash, req.Password) {
		utils.DomainErrorJSON(c, common.ErrInvalidCredentials)
		return
	}

	accessToken, err := token.Generate(u.Email, ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        newUserResponse(u),
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/me [get]
// @Security Bearer
func (ac *AuthController) Me(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, newUserResponse(principal))
}
