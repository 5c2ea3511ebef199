package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"findash/internal/dto"
	apierrors "findash/internal/errors"
	"findash/internal/models"
	"findash/internal/repositories"
	"findash/internal/services"
	"findash/internal/validation"
)

const deadlineLayout = "2006-01-02"

// SavingsHandler serves savings goal and rule management plus the
// savings projection endpoint, scoped per institution
type SavingsHandler struct {
	catalog        repositories.CatalogRepositoryInterface
	savingsService services.SavingsServiceInterface
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(
	catalog repositories.CatalogRepositoryInterface,
	savingsService services.SavingsServiceInterface,
) *SavingsHandler {
	return &SavingsHandler{
		catalog:        catalog,
		savingsService: savingsService,
	}
}

// ListGoals returns the institution's savings goals
func (h *SavingsHandler) ListGoals(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	goals := h.savingsService.ListGoals(snapshot.ID)
	return c.JSON(http.StatusOK, SuccessResponse{Data: goals})
}

// CreateGoal validates and stores a new savings goal
func (h *SavingsHandler) CreateGoal(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails(validation.FormatValidationErrors(err)...))
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(deadlineLayout, req.Deadline)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate,
				apierrors.WithDetails("deadline must be formatted as YYYY-MM-DD"))
		}
		deadline = &parsed
	}

	goal, err := h.savingsService.AddGoal(snapshot.ID, req.Name,
		decimal.NewFromFloat(req.TargetAmount), deadline, *snapshot)
	if err != nil {
		return h.savingsError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    goal,
		Message: "Savings goal created",
	})
}

// DeleteGoal removes a savings goal by ID
func (h *SavingsHandler) DeleteGoal(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	goalID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("goalId must be a valid UUID"))
	}

	if err := h.savingsService.RemoveGoal(snapshot.ID, goalID, *snapshot); err != nil {
		return h.savingsError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Savings goal deleted"})
}

// ListRules returns the institution's savings rules
func (h *SavingsHandler) ListRules(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	rules := h.savingsService.ListRules(snapshot.ID)
	return c.JSON(http.StatusOK, SuccessResponse{Data: rules})
}

// CreateRule validates and stores a new savings rule
func (h *SavingsHandler) CreateRule(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	var req dto.CreateRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails(validation.FormatValidationErrors(err)...))
	}

	rule, err := h.savingsService.AddRule(snapshot.ID, models.RuleType(req.Type),
		decimal.NewFromFloat(req.Amount), *snapshot)
	if err != nil {
		return h.savingsError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    rule,
		Message: "Savings rule created",
	})
}

// ToggleRule flips a rule's active flag
func (h *SavingsHandler) ToggleRule(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("ruleId must be a valid UUID"))
	}

	rule, err := h.savingsService.ToggleRule(snapshot.ID, ruleID, *snapshot)
	if err != nil {
		return h.savingsError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: rule})
}

// DeleteRule removes a savings rule by ID
func (h *SavingsHandler) DeleteRule(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("ruleId must be a valid UUID"))
	}

	if err := h.savingsService.RemoveRule(snapshot.ID, ruleID, *snapshot); err != nil {
		return h.savingsError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Savings rule deleted"})
}

// GetPreference returns the institution's tracking preference
func (h *SavingsHandler) GetPreference(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	preference := h.savingsService.GetTrackingPreference(snapshot.ID)
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]models.TrackingPreference{"tracking_preference": preference},
	})
}

// UpdatePreference switches how projected savings are tracked
func (h *SavingsHandler) UpdatePreference(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	var req dto.UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails(validation.FormatValidationErrors(err)...))
	}

	h.savingsService.SetTrackingPreference(snapshot.ID,
		models.TrackingPreference(req.TrackingPreference), *snapshot)

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Tracking preference updated"})
}

// CalculateSavings returns the full savings projection for the institution
func (h *SavingsHandler) CalculateSavings(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	result := h.savingsService.CalculateSavings(snapshot.ID, *snapshot)
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

func (h *SavingsHandler) snapshot(c echo.Context) (*models.AccountSnapshot, error) {
	return h.catalog.GetInstitution(c.Param("id"))
}

func (h *SavingsHandler) institutionError(c echo.Context, err error) error {
	if errors.Is(err, repositories.ErrInstitutionNotFound) {
		return SendError(c, apierrors.InstitutionNotFound)
	}
	return SendSystemError(c, err)
}

// savingsError maps service-level sentinel errors onto API error codes
func (h *SavingsHandler) savingsError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidGoalName):
		return SendError(c, apierrors.GoalInvalidName)
	case errors.Is(err, services.ErrInvalidGoalTarget):
		return SendError(c, apierrors.GoalInvalidTarget)
	case errors.Is(err, services.ErrInvalidRuleType):
		return SendError(c, apierrors.RuleInvalidType)
	case errors.Is(err, services.ErrInvalidRuleAmount):
		return SendError(c, apierrors.RuleInvalidAmount)
	case errors.Is(err, repositories.ErrGoalNotFound):
		return SendError(c, apierrors.GoalNotFound)
	case errors.Is(err, repositories.ErrRuleNotFound):
		return SendError(c, apierrors.RuleNotFound)
	default:
		return SendSystemError(c, err)
	}
}
