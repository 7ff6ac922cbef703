package routes

import (
	"github.com/Hicham77500/BerserkerCut-sub001/controllers"
	"github.com/Hicham77500/BerserkerCut-sub001/middlewares"
	"github.com/Hicham77500/BerserkerCut-sub001/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(sm *services.SessionManager, hub *services.SyncHub) *gin.Engine {
	r := gin.Default()

	pc := controllers.NewPlanController(sm)
	rc := controllers.NewRealtimeController(hub)

	// Protected plan routes
	plan := r.Group("/plan")
	plan.Use(middlewares.AuthMiddleware())
	{
		plan.GET("/today", pc.GetTodaysPlan)
		plan.POST("/generate", pc.GeneratePlan)
		plan.PATCH("/:id", pc.UpdatePlan)
		plan.POST("/:id/supplements/:supplementId/toggle", pc.ToggleSupplement)
		plan.POST("/:id/supplements/:supplementId/taken", pc.MarkSupplementTaken)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/training-profile", controllers.GetTrainingProfile)
		user.PUT("/training-profile", controllers.UpdateTrainingProfile)
		user.GET("/schedule", controllers.GetWeeklySchedule)
		user.POST("/logout", pc.Logout)
	}

	// Realtime plan sync
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/plan", rc.PlanSyncWS)
	}

	return r
}
