package service_test

import (
	"time"

	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository/memory"
)

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }

var testBase = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// fixture wires the in-memory stores with a small two-module catalog:
//
//	Algebra:  material 1 (20 pts), material 2 (10 pts),
//	          challenge 1 with q1 (10 pts, correct a1) and q2 (5 pts, correct a3)
//	Geometry: material 3 (40 pts),
//	          challenge 2 with q3 (2 pts, correct a5)
//
// and three users: 1 and 2 are students, 3 is an admin.
type fixture struct {
	catalog  *memory.CatalogRepository
	users    *memory.UserRepository
	progress *memory.MaterialProgressRepository
	answers  *memory.UserAnswerRepository
	scores   *memory.ScoreRepository
}

func newFixture() *fixture {
	modules := []model.Module{
		{
			ID:    1,
			Title: "Algebra",
			Materials: []model.Material{
				{ID: 1, ModuleID: 1, Title: "Linear Equations", Points: 20},
				{ID: 2, ModuleID: 1, Title: "Quadratics", Points: 10},
			},
			Challenges: []model.Challenge{
				{
					ID: 1, ModuleID: 1, Title: "Algebra Quiz",
					Questions: []model.Question{
						{
							ID: 1, ChallengeID: 1, Question: "2x = 6, x = ?", Points: 10, AnswerID: uintPtr(1),
							Answers: []model.Answer{
								{ID: 1, QuestionID: 1, Answer: "3"},
								{ID: 2, QuestionID: 1, Answer: "4"},
							},
						},
						{
							ID: 2, ChallengeID: 1, Question: "x^2 = 9, x = ?", Points: 5, AnswerID: uintPtr(3),
							Answers: []model.Answer{
								{ID: 3, QuestionID: 2, Answer: "3 or -3"},
								{ID: 4, QuestionID: 2, Answer: "3"},
							},
						},
					},
				},
			},
		},
		{
			ID:    2,
			Title: "Geometry",
			Materials: []model.Material{
				{ID: 3, ModuleID: 2, Title: "Triangles", Points: 40},
			},
			Challenges: []model.Challenge{
				{
					ID: 2, ModuleID: 2, Title: "Geometry Quiz",
					Questions: []model.Question{
						{
							ID: 3, ChallengeID: 2, Question: "Angles of a triangle sum to?", Points: 2, AnswerID: uintPtr(5),
							Answers: []model.Answer{
								{ID: 5, QuestionID: 3, Answer: "180"},
								{ID: 6, QuestionID: 3, Answer: "360"},
							},
						},
					},
				},
			},
		},
	}

	users := []model.User{
		{ID: 1, Name: "Alice", Nickname: "alice", Email: "alice@example.com", Role: model.RoleUser},
		{ID: 2, Name: "Bob", Nickname: "bob", Email: "bob@example.com", Role: model.RoleUser, AvatarPath: strPtr("/avatars/bob.png")},
		{ID: 3, Name: "Root", Nickname: "root", Email: "admin@example.com", Role: model.RoleAdmin},
	}

	f := &fixture{}
	f.catalog = memory.NewCatalogRepository(modules)
	f.users = memory.NewUserRepository(users)
	f.progress = memory.NewMaterialProgressRepository()
	f.answers = memory.NewUserAnswerRepository(f.catalog)
	f.scores = memory.NewScoreRepository(f.catalog, f.users, f.progress, f.answers)
	return f
}
