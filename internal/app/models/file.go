package models

import "time"

// FileType represents the kind of document a file reference points to
type FileType string

const (
	FileTypeResume       FileType = "resume"
	FileTypeProfilePhoto FileType = "profile_photo"
	FileTypeCertificate  FileType = "certificate"
)

// FileReference is a pointer row to a document held in external object
// storage. The binary itself is deposited by the caller before this row is
// recorded; only the type and URL are stored here.
type FileReference struct {
	ID          int64     `json:"id" db:"id"`
	ApplicantID int64     `json:"applicantId" db:"applicant_id"`
	FileType    FileType  `json:"fileType" db:"file_type" example:"resume"`
	FileURL     string    `json:"fileUrl" db:"file_url" example:"https://storage.example.com/resumes/abc.pdf"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
