package controllers

import (
	"net/http"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func (d *DashboardController) GetStats(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	stats, err := d.Dashboard.Stats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats, "status": http.StatusOK})
}

func (d *DashboardController) GetWeekly(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	trends, err := d.Dashboard.Weekly(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trends, "status": http.StatusOK})
}
