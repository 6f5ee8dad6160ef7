package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nkumar/talentpool/internal/app/models/dto"
	"github.com/nkumar/talentpool/internal/app/services"
	"github.com/nkumar/talentpool/internal/middleware"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

// SubmissionController handles the guided-submission endpoints
type SubmissionController struct {
	submissionService services.SubmissionService
	logger            zerolog.Logger
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService, logger zerolog.Logger) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		logger:            logger,
	}
}

// SubmitApplicant accepts a full guided submission and commits it through
// the ingestion engine. Returns 201 when a new applicant was created, 200
// when an existing one was updated.
func (c *SubmissionController) SubmitApplicant(ctx *gin.Context) {
	body, exists := ctx.Get("validatedBody")
	if !exists {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("missing request body"))
		return
	}
	req, ok := body.(*dto.SubmissionRequest)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	resp, err := c.submissionService.Submit(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewSuccessResponse(resp))
}

// GetApplicant returns one stored applicant core record by ID
func (c *SubmissionController) GetApplicant(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid applicant id"))
		return
	}

	applicant, err := c.submissionService.GetApplicant(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applicant))
}
