package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkumar/talentpool/internal/app/controllers"
	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/app/routes"
	"github.com/nkumar/talentpool/internal/app/services"
	"github.com/nkumar/talentpool/internal/ingest"
)

type stubApplicantStore struct {
	byEmail map[string]*models.Applicant
	nextID  int64
}

func (s *stubApplicantStore) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	return s.byEmail[email], nil
}

func (s *stubApplicantStore) FindByMobile(ctx context.Context, mobile string) (*models.Applicant, error) {
	return nil, nil
}

func (s *stubApplicantStore) Insert(ctx context.Context, applicant *models.Applicant) (int64, error) {
	s.nextID++
	stored := *applicant
	stored.ID = s.nextID
	if stored.EmailAddress != nil {
		s.byEmail[*stored.EmailAddress] = &stored
	}
	return stored.ID, nil
}

func (s *stubApplicantStore) Update(ctx context.Context, applicant *models.Applicant) error {
	return nil
}

type stubEducationStore struct{}

func (stubEducationStore) CreateMany(ctx context.Context, entries []models.EducationEntry) error {
	return nil
}

type stubExperienceStore struct{}

func (stubExperienceStore) CreateMany(ctx context.Context, entries []models.ExperienceEntry) error {
	return nil
}

type stubSkillStore struct{}

func (stubSkillStore) CreateMany(ctx context.Context, entries []models.SkillEntry) error { return nil }

type stubFileStore struct{}

func (stubFileStore) CreateMany(ctx context.Context, refs []models.FileReference) error { return nil }

type stubAddressStore struct{}

func (stubAddressStore) Upsert(ctx context.Context, address *models.Address) error { return nil }

func newTestRouter() (*gin.Engine, *stubApplicantStore) {
	gin.SetMode(gin.TestMode)

	applicants := &stubApplicantStore{byEmail: make(map[string]*models.Applicant)}
	engine := ingest.New(ingest.Stores{
		Applicants: applicants,
		Addresses:  stubAddressStore{},
		Education:  stubEducationStore{},
		Experience: stubExperienceStore{},
		Skills:     stubSkillStore{},
		Files:      stubFileStore{},
	}, zerolog.Nop())

	svc := services.NewSubmissionService(engine, nil, zerolog.Nop())
	ctrl := controllers.NewSubmissionController(svc, zerolog.Nop())

	router := gin.New()
	routes.SetupRouter(router, ctrl)
	return router, applicants
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitApplicantCreated(t *testing.T) {
	router, applicants := newTestRouter()

	w := postJSON(t, router, "/api/v1/applicants", map[string]any{
		"personal": map[string]any{
			"fullName":     "Asha Rao",
			"emailAddress": "asha@x.com",
			"mobileNumber": "9876543210",
		},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Data struct {
			ApplicantID          int64 `json:"applicantId"`
			Created              bool  `json:"created"`
			CompletionPercentage int   `json:"completionPercentage"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Created)
	assert.NotZero(t, resp.Data.ApplicantID)
	assert.Greater(t, resp.Data.CompletionPercentage, 0)
	assert.NotNil(t, applicants.byEmail["asha@x.com"])
}

func TestSubmitApplicantValidationRejected(t *testing.T) {
	router, _ := newTestRouter()

	// fullName below the minimum length
	w := postJSON(t, router, "/api/v1/applicants", map[string]any{
		"personal": map[string]any{
			"fullName":     "A",
			"emailAddress": "asha@x.com",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitApplicantMissingIdentifier(t *testing.T) {
	router, _ := newTestRouter()

	w := postJSON(t, router, "/api/v1/applicants", map[string]any{
		"personal": map[string]any{
			"fullName": "No Contact",
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubmitApplicantMalformedBody(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applicants", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetApplicantBadID(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/applicants/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
