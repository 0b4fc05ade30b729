package controllers

import (
	"errors"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	Meals *services.MealService
}

type LogMealInput struct {
	Type     string    `json:"type"`
	Date     string    `json:"date"`
	Food     string    `json:"food"`
	Calories *intField `json:"calories"`
	Protein  *intField `json:"protein"`
	Carbs    *intField `json:"carbs"`
	Fat      *intField `json:"fat"`
}

func (m *MealController) LogMeal(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	meal := models.Meal{
		UserID: userID,
		Type:   input.Type,
		Food:   input.Food,
		Date:   models.Today(),
	}
	if input.Date != "" {
		date, err := models.ParseDate(input.Date)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		meal.Date = date
	}
	if input.Calories != nil {
		meal.Calories = int(*input.Calories)
	}
	if input.Protein != nil {
		meal.Protein = int(*input.Protein)
	}
	if input.Carbs != nil {
		meal.Carbs = int(*input.Carbs)
	}
	if input.Fat != nil {
		meal.Fat = int(*input.Fat)
	}

	if err := m.Meals.Log(&meal); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, gin.H{"data": meal, "status": 201})
}

func (m *MealController) GetMeals(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var (
		meals []models.Meal
		err   error
	)
	if d := c.Query("date"); d != "" {
		date, perr := models.ParseDate(d)
		if perr != nil {
			c.JSON(400, gin.H{"error": perr.Error()})
			return
		}
		meals, err = m.Meals.ListByUserAndDate(userID, date)
	} else {
		meals, err = m.Meals.ListByUser(userID)
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"data": meals, "status": 200})
}

func (m *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	mealID, ok := pathID(c, "mealId")
	if !ok {
		return
	}

	if err := m.Meals.Delete(userID, mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Meal not found", "status": 404})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"status": 200})
}
