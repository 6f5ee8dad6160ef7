package dto

import (
	"time"

	"github.com/nkumar/talentpool/internal/ingest"
)

// APIResponse is the standard response envelope
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in the standard envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponse wraps an error detail in the standard envelope
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     errorDetail,
		Timestamp: time.Now().UTC(),
	}
}

// StageOutcome reports what happened at one persistence stage
type StageOutcome struct {
	Stage  string `json:"stage" example:"education"`
	Status string `json:"status" example:"written"`
	Reason string `json:"reason,omitempty"`
}

// SubmissionResponse is returned for a successful guided submission
type SubmissionResponse struct {
	ApplicantID          int64          `json:"applicantId" example:"42"`
	Created              bool           `json:"created" example:"true"`
	CompletionPercentage int            `json:"completionPercentage" example:"71"`
	Stages               []StageOutcome `json:"stages"`
}

// NewSubmissionResponse maps an engine report onto the response DTO
func NewSubmissionResponse(rep ingest.Report) *SubmissionResponse {
	resp := &SubmissionResponse{
		ApplicantID:          rep.ApplicantID,
		Created:              rep.Created,
		CompletionPercentage: rep.Completion,
	}
	for _, s := range rep.Stages {
		resp.Stages = append(resp.Stages, StageOutcome{
			Stage:  string(s.Stage),
			Status: string(s.Status),
			Reason: s.Reason,
		})
	}
	return resp
}
