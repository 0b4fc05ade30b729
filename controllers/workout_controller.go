package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutController struct {
	Workouts  *services.WorkoutService
	UploadDir string
}

// Upload validates the form fields before touching the file: a rejected
// request must leave nothing on disk.
func (w *WorkoutController) Upload(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	dateStr := c.PostForm("date")
	location := c.PostForm("location")
	if dateStr == "" || location == "" {
		c.JSON(400, gin.H{"error": "Missing date or location", "status": 400})
		return
	}
	date, err := models.ParseDate(dateStr)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error(), "status": 400})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "Missing file", "status": 400})
		return
	}
	name := fmt.Sprintf("workout_%d_%d.upload", userID, time.Now().UnixMilli())
	if err := utils.SaveUpload(c, file, w.UploadDir, name); err != nil {
		c.JSON(500, gin.H{"error": "Failed to save file", "status": 500})
		return
	}

	workout, err := w.Workouts.Record(userID, date, location)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, gin.H{"data": workout, "status": 201})
}

func (w *WorkoutController) GetWorkouts(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	workouts, err := w.Workouts.ListByUser(userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"data": workouts, "status": 200})
}

func (w *WorkoutController) GetWorkoutByID(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "workoutId")
	if !ok {
		return
	}

	workout, err := w.Workouts.Get(userID, workoutID)
	if err != nil {
		c.JSON(404, gin.H{"error": "Workout not found", "status": 404})
		return
	}
	c.JSON(200, gin.H{"data": workout, "status": 200})
}

func (w *WorkoutController) DeleteWorkout(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "workoutId")
	if !ok {
		return
	}

	if err := w.Workouts.Delete(userID, workoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Workout not found", "status": 404})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"status": 200})
}
