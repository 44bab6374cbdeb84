package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mutlubaslangic/api/internal/llm"
	"github.com/mutlubaslangic/api/internal/models"
)

// Completer is the outbound completion call the planner depends on.
// *llm.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

type PlannerService struct {
	completer  Completer
	budgetRepo models.BudgetRepo
}

func NewPlannerService(completer Completer, budgetRepo models.BudgetRepo) *PlannerService {
	return &PlannerService{
		completer:  completer,
		budgetRepo: budgetRepo,
	}
}

type BudgetPlanInput struct {
	Location    string
	GuestCount  int
	Budget      int
	Preferences string
	SessionID   string
}

// GeneratePlan asks the completion provider for a budget breakdown and
// persists the exchange. A session id is generated when the caller omits one.
func (ps *PlannerService) GeneratePlan(ctx context.Context, in BudgetPlanInput) (string, string, error) {
	if in.Location == "" || in.GuestCount == 0 || in.Budget == 0 {
		return "", "", fmt.Errorf("%w: location, guest count and budget are required", models.ErrInvalidInput)
	}

	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = "wedding-budget-" + uuid.NewString()
	}

	prompt := llm.BudgetPlanPrompt(in.Location, in.GuestCount, in.Budget, in.Preferences)
	plan, err := ps.completer.Complete(ctx, llm.BudgetPlannerSystemPrompt, prompt, llm.BudgetPlannerMaxTokens, llm.BudgetTemperature)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	record := &models.BudgetPlan{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Location:    in.Location,
		GuestCount:  in.GuestCount,
		Budget:      in.Budget,
		Preferences: in.Preferences,
		Plan:        plan,
		CreatedAt:   time.Now(),
	}
	if err := ps.budgetRepo.SaveBudgetPlan(ctx, record); err != nil {
		return "", "", err
	}

	return plan, sessionID, nil
}

// AnswerQuestion is a stateless exchange: the session id is echoed back but no
// conversation history is retrieved or conditioned on.
func (ps *PlannerService) AnswerQuestion(ctx context.Context, question, sessionID string) (string, error) {
	if question == "" || sessionID == "" {
		return "", fmt.Errorf("%w: question and session id are required", models.ErrInvalidInput)
	}

	answer, err := ps.completer.Complete(ctx, llm.BudgetQuestionSystemPrompt, question, llm.BudgetQuestionMaxTokens, llm.BudgetTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	return answer, nil
}
