package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users  *services.UserService
	Tokens *services.TokenService
}

func NewAuthController(users *services.UserService, tokens *services.TokenService) *AuthController {
	return &AuthController{Users: users, Tokens: tokens}
}

type RegisterInput struct {
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	FullName    string    `json:"fullName"`
	DateOfBirth string    `json:"dateOfBirth"`
	Height      *intField `json:"height"`
	Weight      *intField `json:"weight"`
}

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}

	user := models.User{
		FullName:          input.FullName,
		Email:             input.Email,
		Password:          input.Password,
		ProfilePictureURL: "/uploads/default.png",
	}
	if input.DateOfBirth != "" {
		dob, err := models.ParseDate(input.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user.DateOfBirth = &dob
	}
	if input.Height != nil {
		user.Height = int(*input.Height)
	}
	if input.Weight != nil {
		user.Weight = int(*input.Weight)
	}

	if err := a.Users.Register(&user); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token := a.Tokens.Create(user.UserID)
	c.Header("Location", fmt.Sprintf("/api/users/%d", user.UserID))
	c.JSON(http.StatusCreated, authResponse(token, &user))
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credentials"})
		return
	}

	user, err := a.Users.FindByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Password != input.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token := a.Tokens.Create(user.UserID)
	c.JSON(http.StatusOK, authResponse(token, user))
}

// Logout drops the caller's session token. Unknown tokens are ignored.
func (a *AuthController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		a.Tokens.Invalidate(token)
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK})
}

func authResponse(token string, u *models.User) gin.H {
	return gin.H{
		"token":  token,
		"userId": u.UserID,
		"user": gin.H{
			"userId":   u.UserID,
			"fullName": u.FullName,
			"email":    u.Email,
		},
	}
}
