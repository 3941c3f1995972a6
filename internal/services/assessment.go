package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hlifeacademy/dna-backend/internal/assessment"
	"github.com/hlifeacademy/dna-backend/internal/catalog"
	"github.com/hlifeacademy/dna-backend/internal/clients/redis"
	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/repos"
	"github.com/hlifeacademy/dna-backend/internal/requestdata"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

// SubmitInput is a complete sitting: for every group, the item texts in the
// order the user ranked them, most identified with first.
type SubmitInput struct {
	Behavioral [][]string `json:"behavioral"`
	Values     [][]string `json:"values"`
}

type FactorScore struct {
	Factor string `json:"factor"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Band   string `json:"band"`
}

type ProfileView struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Leadership  []string `json:"leadership"`
}

type MotivatorView struct {
	Factor      string `json:"factor"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// auraStatus is static until the narrative generation service ships.
const auraStatus = "coming_soon"

type AssessmentView struct {
	ID         uuid.UUID     `json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	Disc       []FactorScore `json:"disc"`
	Values     []FactorScore `json:"values"`
	Profile    ProfileView   `json:"profile"`
	Motivator  MotivatorView `json:"motivator"`
	AuraStatus string        `json:"aura_status"`
}

// SubmitOutput reports the computed result plus whether persistence
// succeeded. Scoring never fails on a storage error; the client still gets
// its result with Saved false.
type SubmitOutput struct {
	Saved      bool            `json:"saved"`
	Assessment *AssessmentView `json:"assessment"`
}

type DashboardSummary struct {
	User             *types.User              `json:"user"`
	Latest           *AssessmentView          `json:"latest"`
	Insights         []assessment.Insight     `json:"insights"`
	TotalAssessments int64                    `json:"total_assessments"`
	Retake           *assessment.RetakeStatus `json:"retake"`
}

type AssessmentService interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmitOutput, error)
	List(ctx context.Context) ([]*AssessmentView, error)
	Latest(ctx context.Context) (*AssessmentView, error)
	Get(ctx context.Context, assessmentID uuid.UUID) (*AssessmentView, error)
	Retake(ctx context.Context) (*assessment.RetakeStatus, error)
	Dashboard(ctx context.Context) (*DashboardSummary, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	assessmentRepo repos.AssessmentRepo
	resultCache    redis.ResultCache
	behavioral     catalog.Inventory
	values         catalog.Inventory
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	assessmentRepo repos.AssessmentRepo,
	resultCache redis.ResultCache,
	behavioral catalog.Inventory,
	values catalog.Inventory,
) AssessmentService {
	serviceLog := log.With("service", "AssessmentService")
	return &assessmentService{
		db:             db,
		log:            serviceLog,
		userRepo:       userRepo,
		assessmentRepo: assessmentRepo,
		resultCache:    resultCache,
		behavioral:     behavioral,
		values:         values,
	}
}

func (s *assessmentService) currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("request data not set in context")
	}
	return rd.UserID, nil
}

// rankingFactors maps the ranked item texts of one group back onto factors.
func rankingFactors(inv catalog.Inventory, groupIdx int, rankedTexts []string) ([]catalog.Factor, error) {
	byText := make(map[string]catalog.Factor, len(inv.Groups[groupIdx].Items))
	for _, item := range inv.Groups[groupIdx].Items {
		byText[item.Text] = item.Factor
	}
	out := make([]catalog.Factor, 0, len(rankedTexts))
	for _, text := range rankedTexts {
		f, ok := byText[text]
		if !ok {
			return nil, fmt.Errorf("item %q does not belong to group %d", text, groupIdx)
		}
		out = append(out, f)
	}
	return out, nil
}

// replay runs the submitted rankings through a fresh sitting and returns
// the finalized result.
func (s *assessmentService) replay(input SubmitInput) (assessment.Result, error) {
	if len(input.Behavioral) != catalog.GroupCount {
		return assessment.Result{}, fmt.Errorf("expected %d behavioral groups, got %d", catalog.GroupCount, len(input.Behavioral))
	}
	if len(input.Values) != catalog.GroupCount {
		return assessment.Result{}, fmt.Errorf("expected %d values groups, got %d", catalog.GroupCount, len(input.Values))
	}

	sitting := assessment.NewSitting(s.behavioral, s.values)
	if err := sitting.Start(); err != nil {
		return assessment.Result{}, err
	}
	for gi, rankedTexts := range input.Behavioral {
		ranking, err := rankingFactors(s.behavioral, gi, rankedTexts)
		if err != nil {
			return assessment.Result{}, err
		}
		if err := sitting.Submit(ranking); err != nil {
			return assessment.Result{}, err
		}
	}
	for gi, rankedTexts := range input.Values {
		ranking, err := rankingFactors(s.values, gi, rankedTexts)
		if err != nil {
			return assessment.Result{}, err
		}
		if err := sitting.Submit(ranking); err != nil {
			return assessment.Result{}, err
		}
	}
	return sitting.Result()
}

func (s *assessmentService) Submit(ctx context.Context, input SubmitInput) (*SubmitOutput, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	retake, err := s.retakeForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if retake != nil && !retake.CanRetake {
		return nil, fmt.Errorf("Retake not available for another %d days", retake.DaysRemaining)
	}

	result, err := s.replay(input)
	if err != nil {
		return nil, err
	}

	record := &types.Assessment{
		ID:            uuid.New(),
		UserID:        userID,
		DiscResults:   scoresToJSONMap(result.Disc),
		ValuesResults: scoresToJSONMap(result.Values),
		CreatedAt:     time.Now(),
	}

	// Drop the previous cached latest first so a concurrent read between
	// the insert and the cache refresh falls through to the database.
	if s.resultCache != nil {
		if cErr := s.resultCache.InvalidateLatest(ctx, userID); cErr != nil {
			s.log.Warn("Failed to drop cached latest assessment", "error", cErr)
		}
	}

	saved := true
	if _, cErr := s.assessmentRepo.Create(ctx, nil, []*types.Assessment{record}); cErr != nil {
		// The result is still returned; the client may retry the save.
		s.log.Error("Failed to persist assessment", "user_id", userID, "error", cErr)
		saved = false
	}

	view := s.buildView(record)
	if saved && s.resultCache != nil {
		if cErr := s.resultCache.SetLatest(ctx, userID, view); cErr != nil {
			s.log.Warn("Failed to cache latest assessment", "error", cErr)
		}
	}

	return &SubmitOutput{Saved: saved, Assessment: view}, nil
}

func (s *assessmentService) List(ctx context.Context) ([]*AssessmentView, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.assessmentRepo.ListByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("Failed to list assessments: %w", err)
	}
	views := make([]*AssessmentView, 0, len(records))
	for _, record := range records {
		views = append(views, s.buildView(record))
	}
	return views, nil
}

func (s *assessmentService) Latest(ctx context.Context) (*AssessmentView, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.latestForUser(ctx, userID)
}

func (s *assessmentService) latestForUser(ctx context.Context, userID uuid.UUID) (*AssessmentView, error) {
	if s.resultCache != nil {
		var cached AssessmentView
		if hit, cErr := s.resultCache.GetLatest(ctx, userID, &cached); cErr != nil {
			s.log.Warn("Result cache read failed", "error", cErr)
		} else if hit {
			return &cached, nil
		}
	}

	records, err := s.assessmentRepo.LatestByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load latest assessment: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	view := s.buildView(records[0])

	if s.resultCache != nil {
		if cErr := s.resultCache.SetLatest(ctx, userID, view); cErr != nil {
			s.log.Warn("Failed to cache latest assessment", "error", cErr)
		}
	}
	return view, nil
}

func (s *assessmentService) Get(ctx context.Context, assessmentID uuid.UUID) (*AssessmentView, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.assessmentRepo.GetByIDs(ctx, nil, []uuid.UUID{assessmentID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load assessment: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("Assessment not found")
	}
	record := records[0]
	if record.UserID != userID {
		// Do not leak existence of other users' results.
		return nil, fmt.Errorf("Assessment not found")
	}
	return s.buildView(record), nil
}

func (s *assessmentService) Retake(ctx context.Context) (*assessment.RetakeStatus, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	status, err := s.retakeForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &assessment.RetakeStatus{CanRetake: true}, nil
	}
	return status, nil
}

// retakeForUser returns nil when the user never took the assessment.
func (s *assessmentService) retakeForUser(ctx context.Context, userID uuid.UUID) (*assessment.RetakeStatus, error) {
	records, err := s.assessmentRepo.LatestByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("Failed to check latest assessment: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	status := assessment.RetakeStatusAt(records[0].CreatedAt, time.Now())
	return &status, nil
}

func (s *assessmentService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, uErr := s.userRepo.GetByIDs(gctx, nil, []uuid.UUID{userID})
		if uErr != nil {
			return fmt.Errorf("Failed to load user: %w", uErr)
		}
		if len(users) == 0 {
			return fmt.Errorf("user does not exist")
		}
		summary.User = users[0]
		return nil
	})
	g.Go(func() error {
		latest, lErr := s.latestForUser(gctx, userID)
		if lErr != nil {
			return lErr
		}
		summary.Latest = latest
		if latest != nil {
			status := assessment.RetakeStatusAt(latest.CreatedAt, time.Now())
			summary.Retake = &status
		}
		return nil
	})
	g.Go(func() error {
		count, cErr := s.assessmentRepo.CountByUserIDs(gctx, nil, []uuid.UUID{userID})
		if cErr != nil {
			return fmt.Errorf("Failed to count assessments: %w", cErr)
		}
		summary.TotalAssessments = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if summary.Retake == nil {
		summary.Retake = &assessment.RetakeStatus{CanRetake: true}
	}
	if summary.Latest != nil {
		for _, letter := range summary.Latest.Profile.Code {
			summary.Insights = append(summary.Insights, assessment.InsightFor(catalog.Factor(string(letter))))
		}
	}
	return summary, nil
}

func (s *assessmentService) buildView(record *types.Assessment) *AssessmentView {
	disc := scoresFromJSONMap(record.DiscResults)
	values := scoresFromJSONMap(record.ValuesResults)

	classification := assessment.Classify(disc)
	motivator := assessment.SelectMotivator(values)

	view := &AssessmentView{
		ID:         record.ID,
		CreatedAt:  record.CreatedAt,
		AuraStatus: auraStatus,
		Profile: ProfileView{
			Code:        classification.Code,
			Name:        assessment.ProfileDisplayName(classification),
			Description: assessment.ProfileDescription(classification),
			Strengths:   assessment.CombinedStrengths(classification),
			Leadership:  assessment.CombinedLeadership(classification),
		},
		Motivator: MotivatorView{
			Factor:      string(motivator),
			Name:        assessment.MotivatorName(motivator),
			Description: assessment.MotivatorDescription(motivator),
		},
	}
	for _, f := range catalog.BehavioralFactors {
		view.Disc = append(view.Disc, FactorScore{
			Factor: string(f),
			Name:   assessment.DiscFullName(f),
			Score:  disc[f],
			Band:   string(assessment.BandFor(disc[f])),
		})
	}
	for _, f := range catalog.ValuesFactors {
		view.Values = append(view.Values, FactorScore{
			Factor: string(f),
			Name:   assessment.MotivatorName(f),
			Score:  values[f],
			Band:   string(assessment.BandFor(values[f])),
		})
	}
	return view
}

func scoresToJSONMap(scores map[catalog.Factor]int) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for f, v := range scores {
		out[string(f)] = v
	}
	return out
}

func scoresFromJSONMap(raw datatypes.JSONMap) map[catalog.Factor]int {
	out := map[catalog.Factor]int{}
	for k, v := range raw {
		switch n := v.(type) {
		case float64:
			out[catalog.Factor(k)] = int(n)
		case int:
			out[catalog.Factor(k)] = n
		}
	}
	return out
}
