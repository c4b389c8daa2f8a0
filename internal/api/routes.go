package api

import (
	"net/http"

	"alcyxob/calis-tracker/internal/repository/dual"
	"alcyxob/calis-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	exerciseService service.ExerciseService,
	checklistService service.ChecklistService,
	health *dual.Health,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	checklistHandler := NewChecklistHandler(checklistService)
	statsHandler := NewStatsHandler(exerciseService, health)

	router.Use(CORSMiddleware())
	router.Use(RequestLogger())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Exercise Routes ---
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.PATCH("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.GET("/:id/chart", exerciseHandler.GetExerciseChart)
		}

		// --- Checklist Routes ---
		checklistGroup := apiV1.Group("/checklist")
		{
			checklistGroup.GET("", checklistHandler.ListChecklist)
			checklistGroup.POST("", checklistHandler.UpsertChecklist)
			checklistGroup.DELETE("/:id", checklistHandler.DeleteChecklist)
		}

		apiV1.GET("/stats", statsHandler.GetStats)
		apiV1.GET("/status", statsHandler.GetStatus)
	}
}
