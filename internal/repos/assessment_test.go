package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/hlifeacademy/dna-backend/internal/repos/testutil"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

func seedUser(t *testing.T, repo UserRepo) *types.User {
	t.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Email:    uuid.NewString() + "@example.com",
		Password: "hashed",
		FullName: "Test User",
	}
	if _, err := repo.Create(context.Background(), nil, []*types.User{user}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedAssessment(t *testing.T, repo AssessmentRepo, userID uuid.UUID, createdAt time.Time) *types.Assessment {
	t.Helper()
	a := &types.Assessment{
		ID:            uuid.New(),
		UserID:        userID,
		DiscResults:   datatypes.JSONMap{"D": 60, "I": 55, "S": 20, "C": 10},
		ValuesResults: datatypes.JSONMap{"P": 80, "E": 70, "R": 40, "S": 40, "B": 40, "T": 40},
		CreatedAt:     createdAt,
	}
	if _, err := repo.Create(context.Background(), nil, []*types.Assessment{a}); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	return a
}

func TestAssessmentRepoListNewestFirst(t *testing.T) {
	db := testutil.OpenDB(t)
	log := testutil.NewLogger(t)
	userRepo := NewUserRepo(db, log)
	repo := NewAssessmentRepo(db, log)
	ctx := context.Background()

	user := seedUser(t, userRepo)
	old := seedAssessment(t, repo, user.ID, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	recent := seedAssessment(t, repo, user.ID, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

	results, err := repo.ListByUserIDs(ctx, nil, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d assessments, want 2", len(results))
	}
	if results[0].ID != recent.ID || results[1].ID != old.ID {
		t.Fatal("assessments not ordered newest first")
	}
}

func TestAssessmentRepoLatestByUserIDs(t *testing.T) {
	db := testutil.OpenDB(t)
	log := testutil.NewLogger(t)
	userRepo := NewUserRepo(db, log)
	repo := NewAssessmentRepo(db, log)
	ctx := context.Background()

	alice := seedUser(t, userRepo)
	bob := seedUser(t, userRepo)
	seedAssessment(t, repo, alice.ID, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	latestAlice := seedAssessment(t, repo, alice.ID, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	latestBob := seedAssessment(t, repo, bob.ID, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	results, err := repo.LatestByUserIDs(ctx, nil, []uuid.UUID{alice.ID, bob.ID})
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d assessments, want one per user", len(results))
	}
	byUser := map[uuid.UUID]uuid.UUID{}
	for _, a := range results {
		byUser[a.UserID] = a.ID
	}
	if byUser[alice.ID] != latestAlice.ID {
		t.Fatal("wrong latest assessment for first user")
	}
	if byUser[bob.ID] != latestBob.ID {
		t.Fatal("wrong latest assessment for second user")
	}
}

func TestAssessmentRepoEmptyInputs(t *testing.T) {
	db := testutil.OpenDB(t)
	log := testutil.NewLogger(t)
	repo := NewAssessmentRepo(db, log)
	ctx := context.Background()

	if created, err := repo.Create(ctx, nil, nil); err != nil || len(created) != 0 {
		t.Fatalf("create with no rows: %v %v", created, err)
	}
	if results, err := repo.ListByUserIDs(ctx, nil, nil); err != nil || len(results) != 0 {
		t.Fatalf("list with no user ids: %v %v", results, err)
	}
	count, err := repo.CountByUserIDs(ctx, nil, nil)
	if err != nil || count != 0 {
		t.Fatalf("count with no user ids: %d %v", count, err)
	}
}

func TestUserRepoEmailExists(t *testing.T) {
	db := testutil.OpenDB(t)
	log := testutil.NewLogger(t)
	userRepo := NewUserRepo(db, log)
	ctx := context.Background()

	user := seedUser(t, userRepo)

	exists, err := userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Fatal("expected seeded email to exist")
	}

	exists, err = userRepo.EmailExists(ctx, nil, "nobody@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if exists {
		t.Fatal("expected unknown email to not exist")
	}
}
