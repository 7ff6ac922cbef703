package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Hicham77500/BerserkerCut-sub001/models"
	"github.com/Hicham77500/BerserkerCut-sub001/utils"

	"github.com/google/uuid"
)

// RemotePlanService is the collaborator boundary to the plan generation
// backend. GetTodaysPlan returns (nil, nil) when no plan exists yet for the
// day. MarkSupplementTaken is one-directional: the service has no un-mark
// operation, so local untakes never reach it.
type RemotePlanService interface {
	GetTodaysPlan(userID string) (*models.DailyPlan, error)
	GenerateDailyPlan(userID string) (*models.DailyPlan, error)
	UpdateDailyPlan(planID string, update PlanUpdate) (*models.DailyPlan, error)
	MarkSupplementTaken(planID, supplementID string) (*models.DailyPlan, error)
}

type PlanAPIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewPlanAPIClient initializes the client with credentials from the environment.
func NewPlanAPIClient() *PlanAPIClient {
	return &PlanAPIClient{
		baseURL: os.Getenv("PLAN_API_URL"),
		apiKey:  os.Getenv("PLAN_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Wire shape of a plan document. All dates arrive as ISO-8601 strings and are
// parsed before the document reaches the rest of the app.
type planDocument struct {
	ID             string                           `json:"id"`
	UserID         string                           `json:"userId"`
	Date           string                           `json:"date"`
	DayType        string                           `json:"dayType"`
	NutritionPlan  models.NutritionPlan             `json:"nutritionPlan"`
	SupplementPlan map[string][]supplementIntakeDoc `json:"supplementPlan"`
	DailyTip       string                           `json:"dailyTip"`
	Completed      bool                             `json:"completed"`
	CreatedAt      string                           `json:"createdAt"`
	UpdatedAt      string                           `json:"updatedAt"`
}

type supplementIntakeDoc struct {
	SupplementID string `json:"supplementId"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Timing       string `json:"timing,omitempty"`
	Taken        bool   `json:"taken"`
}

func decodePlanDocument(body []byte) (*models.DailyPlan, error) {
	var doc planDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plan document JSON: %w", err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("plan document has no id")
	}

	date, err := utils.ParseISODate(doc.Date)
	if err != nil {
		return nil, err
	}
	createdAt, err := utils.ParseISODate(doc.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := utils.ParseISODate(doc.UpdatedAt)
	if err != nil {
		return nil, err
	}

	plan := &models.DailyPlan{
		ID:             doc.ID,
		UserID:         doc.UserID,
		Date:           date,
		DayType:        models.DayType(doc.DayType),
		NutritionPlan:  doc.NutritionPlan,
		SupplementPlan: make(models.SupplementPlan, len(doc.SupplementPlan)),
		DailyTip:       doc.DailyTip,
		Completed:      doc.Completed,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	for slot, intakes := range doc.SupplementPlan {
		list := make([]models.SupplementIntake, 0, len(intakes))
		for _, it := range intakes {
			list = append(list, models.SupplementIntake{
				SupplementID: it.SupplementID,
				Name:         it.Name,
				Dosage:       it.Dosage,
				Time:         it.Timing,
				Taken:        it.Taken,
			})
		}
		plan.SupplementPlan[models.SlotKey(slot)] = list
	}
	return plan, nil
}

func (s *PlanAPIClient) do(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read response: %v", ErrRemote, err)
	}
	return body, resp.StatusCode, nil
}

func (s *PlanAPIClient) GetTodaysPlan(userID string) (*models.DailyPlan, error) {
	u := fmt.Sprintf("%s/users/%s/plans/today", s.baseURL, url.PathEscape(userID))
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan request: %w", err)
	}

	body, status, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil // no plan yet for today
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: plan API error %d: %s", ErrRemote, status, string(body))
	}
	return decodePlanDocument(body)
}

func (s *PlanAPIClient) GenerateDailyPlan(userID string) (*models.DailyPlan, error) {
	u := fmt.Sprintf("%s/users/%s/plans/generate", s.baseURL, url.PathEscape(userID))
	req, err := http.NewRequest(http.MethodPost, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create generate request: %w", err)
	}
	// generation is expensive server-side; the request id lets the service
	// dedupe retries
	req.Header.Set("X-Request-ID", uuid.NewString())

	body, status, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("%w: plan generation error %d: %s", ErrRemote, status, string(body))
	}
	return decodePlanDocument(body)
}

func (s *PlanAPIClient) UpdateDailyPlan(planID string, update PlanUpdate) (*models.DailyPlan, error) {
	b, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan update: %w", err)
	}

	u := fmt.Sprintf("%s/plans/%s", s.baseURL, url.PathEscape(planID))
	req, err := http.NewRequest(http.MethodPatch, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create update request: %w", err)
	}

	body, status, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: plan %s", ErrNotFound, planID)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: plan update error %d: %s", ErrRemote, status, string(body))
	}
	return decodePlanDocument(body)
}

func (s *PlanAPIClient) MarkSupplementTaken(planID, supplementID string) (*models.DailyPlan, error) {
	u := fmt.Sprintf("%s/plans/%s/supplements/%s/taken",
		s.baseURL, url.PathEscape(planID), url.PathEscape(supplementID))
	req, err := http.NewRequest(http.MethodPost, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mark-taken request: %w", err)
	}

	body, status, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: supplement %s in plan %s", ErrNotFound, supplementID, planID)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: mark-taken error %d: %s", ErrRemote, status, string(body))
	}
	return decodePlanDocument(body)
}
