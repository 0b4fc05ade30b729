package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users     *services.UserService
	UploadDir string
}

func (u *UserController) GetProfile(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	user, err := u.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profileBody(user)})
}

type UpdateProfileInput struct {
	FullName *string   `json:"fullName"`
	Height   *intField `json:"height"`
	Weight   *intField `json:"weight"`
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := u.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Height != nil {
		user.Height = int(*input.Height)
	}
	if input.Weight != nil {
		user.Weight = int(*input.Weight)
	}

	if err := u.Users.Save(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profileBody(user)})
}

func (u *UserController) UploadProfilePicture(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	user, err := u.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	name := fmt.Sprintf("avatar_%d_%d.png", userID, time.Now().UnixMilli())
	if err := utils.SaveUpload(c, file, u.UploadDir, name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	user.ProfilePictureURL = "/uploads/" + name
	if err := u.Users.Save(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"profilePictureUrl": user.ProfilePictureURL}})
}

func profileBody(u *models.User) gin.H {
	return gin.H{
		"userId":            u.UserID,
		"fullName":          u.FullName,
		"email":             u.Email,
		"dateOfBirth":       u.DateOfBirth,
		"height":            u.Height,
		"weight":            u.Weight,
		"profilePictureUrl": u.ProfilePictureURL,
	}
}
