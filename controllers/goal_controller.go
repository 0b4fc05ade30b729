package controllers

import (
	"errors"
	"net/http"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	Goals *services.GoalService
}

type CreateGoalInput struct {
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	TargetValue *floatField `json:"targetValue"`
	TargetDate  string      `json:"targetDate"`
}

func (g *GoalController) CreateGoal(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var input CreateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goalType, err := models.ParseGoalType(input.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.TargetValue == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing targetValue"})
		return
	}
	targetDate, err := models.ParseDate(input.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := models.Goal{
		UserID:      userID,
		Type:        goalType,
		Title:       input.Title,
		Description: input.Description,
		TargetValue: float64(*input.TargetValue),
		TargetDate:  targetDate,
		Status:      models.GoalActive,
	}
	if err := g.Goals.Create(&goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": goal, "status": http.StatusCreated})
}

func (g *GoalController) GetGoals(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	goals, err := g.Goals.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": goals, "status": http.StatusOK})
}

type UpdateGoalInput struct {
	CurrentValue *floatField `json:"currentValue"`
	Status       *string     `json:"status"`
}

func (g *GoalController) UpdateGoal(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	goalID, ok := pathID(c, "goalId")
	if !ok {
		return
	}
	var input UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := g.Goals.Get(userID, goalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found", "status": http.StatusNotFound})
		return
	}

	if input.CurrentValue != nil {
		goal.CurrentValue = float64(*input.CurrentValue)
	}
	if input.Status != nil {
		status, err := models.ParseGoalStatus(*input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		goal.Status = status
	}

	if err := g.Goals.Save(goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": goal, "status": http.StatusOK})
}

func (g *GoalController) DeleteGoal(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	goalID, ok := pathID(c, "goalId")
	if !ok {
		return
	}

	if err := g.Goals.Delete(userID, goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found", "status": http.StatusNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK})
}
