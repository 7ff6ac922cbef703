// controllers/plan_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Hicham77500/BerserkerCut-sub001/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Sessions *services.SessionManager
}

func NewPlanController(sm *services.SessionManager) *PlanController {
	return &PlanController{Sessions: sm}
}

func planErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRemote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (pc *PlanController) GetTodaysPlan(c *gin.Context) {
	uid := c.GetString("userID")
	ps := pc.Sessions.Store(uid)

	plan, err := ps.LoadTodaysPlan()
	if err != nil {
		c.JSON(planErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "progress": ps.Progress()})
}

func (pc *PlanController) GeneratePlan(c *gin.Context) {
	uid := c.GetString("userID")
	ps := pc.Sessions.Store(uid)

	plan, err := ps.GenerateDailyPlan()
	if err != nil {
		c.JSON(planErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "progress": ps.Progress()})
}

func (pc *PlanController) UpdatePlan(c *gin.Context) {
	uid := c.GetString("userID")
	ps := pc.Sessions.Store(uid)

	var update services.PlanUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := ps.UpdatePlan(c.Param("id"), update)
	if err != nil {
		c.JSON(planErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "progress": ps.Progress()})
}

func (pc *PlanController) ToggleSupplement(c *gin.Context) {
	uid := c.GetString("userID")
	ps := pc.Sessions.Store(uid)

	plan, err := ps.ToggleSupplement(c.Param("id"), c.Param("supplementId"))
	if err != nil {
		c.JSON(planErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "progress": ps.Progress()})
}

func (pc *PlanController) MarkSupplementTaken(c *gin.Context) {
	uid := c.GetString("userID")
	ps := pc.Sessions.Store(uid)

	plan, err := ps.MarkSupplementTaken(c.Param("id"), c.Param("supplementId"))
	if err != nil {
		c.JSON(planErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "progress": ps.Progress()})
}

func (pc *PlanController) Logout(c *gin.Context) {
	pc.Sessions.Close(c.GetString("userID"))
	c.Status(http.StatusNoContent)
}
