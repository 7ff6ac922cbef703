// controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/Hicham77500/BerserkerCut-sub001/config"
	"github.com/Hicham77500/BerserkerCut-sub001/models"
	"github.com/Hicham77500/BerserkerCut-sub001/services"
	"github.com/Hicham77500/BerserkerCut-sub001/utils"

	"github.com/gin-gonic/gin"
)

func GetTrainingProfile(c *gin.Context) {
	uid := c.GetString("userID")

	var days []models.TrainingDay
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("weekday asc").
		Find(&days).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainingDays": days})
}

func UpdateTrainingProfile(c *gin.Context) {
	uid := c.GetString("userID")

	var req struct {
		TrainingDays []models.TrainingDay `json:"trainingDays"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, d := range req.TrainingDays {
		if d.Weekday < 0 || d.Weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be 0-6"})
			return
		}
	}

	// replace the whole profile
	if err := config.DB.
		Where("user_id = ?", uid).
		Delete(&models.TrainingDay{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range req.TrainingDays {
		day := req.TrainingDays[i]
		day.ID = 0
		day.UserID = uid
		if err := config.DB.Create(&day).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func GetWeeklySchedule(c *gin.Context) {
	uid := c.GetString("userID")

	var days []models.TrainingDay
	if err := config.DB.
		Where("user_id = ?", uid).
		Find(&days).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	schedule := services.BuildWeeklySchedule(days, utils.SystemClock)
	c.JSON(http.StatusOK, gin.H{"week": schedule})
}
