package mealplan

import (
	"context"
	"testing"

	"plateplan-backend/domain"
	"plateplan-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type memoryMealPlanRepository struct {
	member      *entities.HouseholdMember
	household   *entities.Household
	memberCount int64
	plans       []*entities.MealPlan
	feedback    []*entities.MealPlanFeedback
}

func (m *memoryMealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	m.plans = append(m.plans, plan)
	return nil
}

func (m *memoryMealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	for _, plan := range m.plans {
		if plan.ID.String() == id {
			return plan, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryMealPlanRepository) GetMealPlansByMemberID(ctx context.Context, memberID string) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	for _, plan := range m.plans {
		if plan.MemberID.String() == memberID {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (m *memoryMealPlanRepository) GetActiveMealPlanByMemberID(ctx context.Context, memberID string) (*entities.MealPlan, error) {
	for _, plan := range m.plans {
		if plan.MemberID.String() == memberID && plan.IsActive {
			return plan, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Mirrors the real repository's transactional swap: every other plan of
// the member deactivates, then the given plan activates.
func (m *memoryMealPlanRepository) ActivateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	for _, p := range m.plans {
		if p.MemberID == plan.MemberID && p.ID != plan.ID {
			p.IsActive = false
		}
	}
	plan.IsActive = true
	return nil
}

func (m *memoryMealPlanRepository) CreateFeedback(ctx context.Context, feedback *entities.MealPlanFeedback) error {
	m.feedback = append(m.feedback, feedback)
	return nil
}

func (m *memoryMealPlanRepository) GetMemberByID(ctx context.Context, id string) (*entities.HouseholdMember, error) {
	if m.member == nil || m.member.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.member, nil
}

func (m *memoryMealPlanRepository) GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error) {
	if m.household == nil || m.household.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.household, nil
}

func (m *memoryMealPlanRepository) CountMembersByHouseholdID(ctx context.Context, householdID string) (int64, error) {
	return m.memberCount, nil
}

type stubGenerator struct {
	plan      *domain.GeneratedWeeklyPlan
	err       error
	gotParams domain.MealPlanParams
}

func (g *stubGenerator) GenerateRecipe(ctx context.Context, params domain.MealPlanParams, req domain.GenerateRecipeRequest) (*domain.GeneratedRecipe, error) {
	return nil, g.err
}

func (g *stubGenerator) GenerateWeeklyPlan(ctx context.Context, params domain.MealPlanParams) (*domain.GeneratedWeeklyPlan, error) {
	g.gotParams = params
	if g.err != nil {
		return nil, g.err
	}
	return g.plan, nil
}

func testWeeklyPlan() *domain.GeneratedWeeklyPlan {
	days := make(map[string]domain.DayMeals, len(domain.DayNames))
	for _, day := range domain.DayNames {
		days[day] = domain.DayMeals{
			Dinner: &domain.GeneratedRecipe{
				Title:        "Lentil Curry",
				Instructions: []string{"Simmer the lentils."},
				Ingredients:  []domain.Ingredient{{Name: "lentils", Amount: "200", Unit: "g"}},
				Servings:     2,
				Difficulty:   "easy",
			},
		}
	}
	return &domain.GeneratedWeeklyPlan{
		Days:                days,
		TotalWeeklyCost:     62.5,
		TotalWeeklyCalories: 12400,
		BatchCookingTips:    []string{"Double the curry batch."},
	}
}

func setupMealPlanService(gen *stubGenerator) (MealPlanService, *memoryMealPlanRepository, *entities.HouseholdMember, *entities.Household) {
	household := &entities.Household{ID: uuid.New(), OwnerID: uuid.New(), Currency: "USD", WeeklyBudget: 100}
	member := &entities.HouseholdMember{ID: uuid.New(), HouseholdID: household.ID, Name: "Alex"}
	repo := &memoryMealPlanRepository{member: member, household: household, memberCount: 1}
	return NewMealPlanService(repo, gen), repo, member, household
}

func TestGenerateMealPlanPersistsAndActivates(t *testing.T) {
	svc, repo, member, household := setupMealPlanService(&stubGenerator{plan: testWeeklyPlan()})

	res, err := svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{}, household.OwnerID.String())

	assert.NoError(t, err)
	assert.Len(t, repo.plans, 1)
	assert.True(t, repo.plans[0].IsActive)
	assert.Equal(t, 62.5, res.TotalWeeklyCost)
	assert.Len(t, res.Meals, 7)
	assert.Equal(t, "Lentil Curry", res.Meals["monday"].Dinner.Title)
}

func TestGenerateMealPlanSupersedesActivePlan(t *testing.T) {
	svc, repo, member, household := setupMealPlanService(&stubGenerator{plan: testWeeklyPlan()})

	_, err := svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{}, household.OwnerID.String())
	assert.NoError(t, err)
	_, err = svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{}, household.OwnerID.String())
	assert.NoError(t, err)

	active := 0
	for _, plan := range repo.plans {
		if plan.IsActive {
			active++
		}
	}
	assert.Len(t, repo.plans, 2)
	assert.Equal(t, 1, active, "only the latest plan may be active")
	assert.True(t, repo.plans[1].IsActive)
}

func TestGenerateMealPlanSizesPromptToHousehold(t *testing.T) {
	gen := &stubGenerator{plan: testWeeklyPlan()}
	svc, repo, member, household := setupMealPlanService(gen)
	repo.memberCount = 4

	_, err := svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{}, household.OwnerID.String())

	assert.NoError(t, err)
	assert.Equal(t, 4, gen.gotParams.FamilySize)
}

func TestGenerateMealPlanMemberNotFound(t *testing.T) {
	svc, repo, _, household := setupMealPlanService(&stubGenerator{plan: testWeeklyPlan()})

	_, err := svc.GenerateMealPlan(context.Background(), uuid.NewString(), domain.GenerateMealPlanRequest{}, household.OwnerID.String())

	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	assert.Empty(t, repo.plans)
}

func TestGenerateMealPlanRejectsForeignOwner(t *testing.T) {
	svc, repo, member, _ := setupMealPlanService(&stubGenerator{plan: testWeeklyPlan()})

	_, err := svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedHousehold)
	assert.Empty(t, repo.plans)
}

func TestGenerateMealPlanModelFailure(t *testing.T) {
	svc, repo, member, household := setupMealPlanService(&stubGenerator{err: domain.ErrGenerationFailed})

	_, err := svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{}, household.OwnerID.String())

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.Empty(t, repo.plans, "nothing persists when the model call fails")
}

func TestGenerateMealPlanUsesRequestedWeekStart(t *testing.T) {
	svc, repo, member, household := setupMealPlanService(&stubGenerator{plan: testWeeklyPlan()})

	_, err := svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{WeekStartDate: "2026-09-07"}, household.OwnerID.String())

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-07", repo.plans[0].WeekStartDate.Format("2006-01-02"))
}

func TestActivateMealPlanNotFound(t *testing.T) {
	svc, _, _, household := setupMealPlanService(&stubGenerator{plan: testWeeklyPlan()})

	err := svc.ActivateMealPlan(context.Background(), uuid.NewString(), household.OwnerID.String())

	assert.ErrorIs(t, err, domain.ErrMealPlanNotFound)
}

func TestSaveFeedbackStoresRating(t *testing.T) {
	svc, repo, member, household := setupMealPlanService(&stubGenerator{plan: testWeeklyPlan()})

	res, err := svc.GenerateMealPlan(context.Background(), member.ID.String(), domain.GenerateMealPlanRequest{}, household.OwnerID.String())
	assert.NoError(t, err)

	err = svc.SaveFeedback(context.Background(), res.ID, domain.MealPlanFeedbackRequest{Rating: 4, Reaction: "like"}, household.OwnerID.String())

	assert.NoError(t, err)
	assert.Len(t, repo.feedback, 1)
	assert.Equal(t, 4, repo.feedback[0].Rating)
}
