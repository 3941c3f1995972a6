package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
	"github.com/hlifeacademy/dna-backend/internal/clients/redis"
	"github.com/hlifeacademy/dna-backend/internal/repos"
	"github.com/hlifeacademy/dna-backend/internal/repos/testutil"
	"github.com/hlifeacademy/dna-backend/internal/requestdata"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

// memoryResultCache is an in-process stand-in for the redis cache.
type memoryResultCache struct {
	entries       map[uuid.UUID][]byte
	invalidations int
}

func newMemoryResultCache() *memoryResultCache {
	return &memoryResultCache{entries: map[uuid.UUID][]byte{}}
}

func (c *memoryResultCache) GetLatest(ctx context.Context, userID uuid.UUID, dest interface{}) (bool, error) {
	raw, ok := c.entries[userID]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryResultCache) SetLatest(ctx context.Context, userID uuid.UUID, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	c.entries[userID] = raw
	return nil
}

func (c *memoryResultCache) InvalidateLatest(ctx context.Context, userID uuid.UUID) error {
	c.invalidations++
	delete(c.entries, userID)
	return nil
}

func (c *memoryResultCache) Close() error { return nil }

func newTestAssessmentService(t *testing.T) (AssessmentService, *types.User, context.Context) {
	t.Helper()
	return newTestAssessmentServiceWithCache(t, nil)
}

func newTestAssessmentServiceWithCache(t *testing.T, cache redis.ResultCache) (AssessmentService, *types.User, context.Context) {
	t.Helper()
	db := testutil.OpenDB(t)
	log := testutil.NewLogger(t)

	behavioral, values, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}

	userRepo := repos.NewUserRepo(db, log)
	assessmentRepo := repos.NewAssessmentRepo(db, log)

	user := &types.User{
		ID:       uuid.New(),
		Email:    "tester@example.com",
		Password: "hashed",
		FullName: "Test User",
	}
	if _, err := userRepo.Create(context.Background(), nil, []*types.User{user}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := NewAssessmentService(db, log, userRepo, assessmentRepo, cache, behavioral, values)
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: user.ID})
	return svc, user, ctx
}

// catalogOrderInput ranks every group in catalog order.
func catalogOrderInput(t *testing.T) SubmitInput {
	t.Helper()
	behavioral, values, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	var input SubmitInput
	for _, g := range behavioral.Groups {
		var texts []string
		for _, item := range g.Items {
			texts = append(texts, item.Text)
		}
		input.Behavioral = append(input.Behavioral, texts)
	}
	for _, g := range values.Groups {
		var texts []string
		for _, item := range g.Items {
			texts = append(texts, item.Text)
		}
		input.Values = append(input.Values, texts)
	}
	return input
}

func TestSubmitPersistsAndClassifies(t *testing.T) {
	svc, _, ctx := newTestAssessmentService(t)

	out, err := svc.Submit(ctx, catalogOrderInput(t))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Saved {
		t.Fatal("expected submission to be saved")
	}
	if out.Assessment == nil {
		t.Fatal("expected assessment view")
	}
	if out.Assessment.Profile.Code == "" {
		t.Fatal("expected non-empty profile code")
	}
	if out.Assessment.Motivator.Factor == "" {
		t.Fatal("expected a motivator")
	}
	if out.Assessment.AuraStatus != "coming_soon" {
		t.Fatalf("aura status = %q, want coming_soon", out.Assessment.AuraStatus)
	}

	var discSum int
	for _, fs := range out.Assessment.Disc {
		discSum += fs.Score
		if fs.Band == "" {
			t.Fatalf("factor %s missing band", fs.Factor)
		}
	}
	if discSum < 198 || discSum > 202 {
		t.Fatalf("disc total = %d, want about 200", discSum)
	}

	latest, err := svc.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.ID != out.Assessment.ID {
		t.Fatal("latest does not match submitted assessment")
	}
}

func TestSubmitBlockedInsideRetakeWindow(t *testing.T) {
	svc, _, ctx := newTestAssessmentService(t)

	if _, err := svc.Submit(ctx, catalogOrderInput(t)); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(ctx, catalogOrderInput(t)); err == nil {
		t.Fatal("expected second submit inside the retake window to fail")
	}

	status, err := svc.Retake(ctx)
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if status.CanRetake {
		t.Fatal("expected retake to be blocked right after a sitting")
	}
	if status.DaysRemaining <= 0 {
		t.Fatalf("days remaining = %d, want > 0", status.DaysRemaining)
	}
}

func TestSubmitRejectsUnknownItem(t *testing.T) {
	svc, _, ctx := newTestAssessmentService(t)

	input := catalogOrderInput(t)
	input.Behavioral[0][0] = "definitivamente não é um adjetivo do grupo"
	if _, err := svc.Submit(ctx, input); err == nil {
		t.Fatal("expected submit with unknown item to fail")
	}
}

func TestSubmitRejectsIncompleteSitting(t *testing.T) {
	svc, _, ctx := newTestAssessmentService(t)

	input := catalogOrderInput(t)
	input.Values = input.Values[:5]
	if _, err := svc.Submit(ctx, input); err == nil {
		t.Fatal("expected submit with missing groups to fail")
	}
}

func TestGetRefusesForeignAssessment(t *testing.T) {
	svc, _, ctx := newTestAssessmentService(t)

	out, err := svc.Submit(ctx, catalogOrderInput(t))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	otherCtx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: uuid.New()})
	_, gErr := svc.Get(otherCtx, out.Assessment.ID)
	if gErr == nil {
		t.Fatal("expected foreign assessment lookup to fail")
	}
	if !strings.Contains(gErr.Error(), "not found") {
		t.Fatalf("unexpected error: %v", gErr)
	}
}

func TestSubmitRefreshesCachedLatest(t *testing.T) {
	cache := newMemoryResultCache()
	svc, user, ctx := newTestAssessmentServiceWithCache(t, cache)

	stale := &AssessmentView{ID: uuid.New()}
	if err := cache.SetLatest(ctx, user.ID, stale); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	out, err := svc.Submit(ctx, catalogOrderInput(t))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if cache.invalidations == 0 {
		t.Fatal("expected submit to drop the previous cached latest")
	}

	latest, err := svc.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.ID != out.Assessment.ID {
		t.Fatalf("latest = %v, want the freshly submitted assessment", latest)
	}
}

func TestDashboardCarriesPerFactorInsights(t *testing.T) {
	svc, _, ctx := newTestAssessmentService(t)

	out, err := svc.Submit(ctx, catalogOrderInput(t))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	summary, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(summary.Insights) != len(out.Assessment.Profile.Code) {
		t.Fatalf("got %d insights for code %q", len(summary.Insights), out.Assessment.Profile.Code)
	}
	for i, insight := range summary.Insights {
		if insight.ProfileName == "" {
			t.Fatalf("insight %d missing profile name", i)
		}
		if len(insight.Strengths) == 0 || len(insight.Leadership) == 0 {
			t.Fatalf("insight %d missing narrative lists", i)
		}
	}
}
