package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nkumar/talentpool/internal/app/controllers"
	"github.com/nkumar/talentpool/internal/app/models/dto"
	"github.com/nkumar/talentpool/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	submissionController *controllers.SubmissionController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	applicants := v1.Group("/applicants")
	{
		applicants.POST("", middleware.ValidateRequest(&dto.SubmissionRequest{}), submissionController.SubmitApplicant)
		applicants.GET("/:id", submissionController.GetApplicant)
	}
}
