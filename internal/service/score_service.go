package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository"
	"github.com/studiva/studiva-backend/internal/scoring"
)

const dateLayout = "2006-01-02"

// ScoreService is the scoring engine: per-module score detail, overall
// statistics, daily point series and the overview fan-out. Per-user reads
// batch-fetch the catalog, the user's progress and the user's submissions
// once each and join in memory rather than querying per entity.
type ScoreService interface {
	GetScores(userID uint) (*dto.ScoresResponse, error)
	GetStatistics(userID uint) (*dto.StatisticsDTO, error)
	GetDailyPoints(userID uint, q dto.DailyPointsQuery) ([]dto.DailyPointDTO, error)
	GetUserDetail(userID uint) (*dto.UserDetailResponse, error)
	GetUserOverview(userID uint) (*dto.UserOverviewDTO, error)
	GetAllUserOverviews() ([]dto.UserOverviewDTO, error)
}

type scoreService struct {
	userRepo     repository.UserRepository
	catalogRepo  repository.CatalogRepository
	progressRepo repository.MaterialProgressRepository
	answerRepo   repository.UserAnswerRepository
	scoreRepo    repository.ScoreRepository
}

func NewScoreService(
	userRepo repository.UserRepository,
	catalogRepo repository.CatalogRepository,
	progressRepo repository.MaterialProgressRepository,
	answerRepo repository.UserAnswerRepository,
	scoreRepo repository.ScoreRepository,
) ScoreService {
	return &scoreService{
		userRepo:     userRepo,
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		answerRepo:   answerRepo,
		scoreRepo:    scoreRepo,
	}
}

// userScoreData is the batch-fetched raw material for one user's scores.
type userScoreData struct {
	modules            []model.Module
	bestProgress       map[uint]model.MaterialProgress // material id -> best record
	answersByChallenge map[uint][]model.UserAnswer
	questions          map[uint]model.Question
}

func (s *scoreService) fetchUserScoreData(userID uint) (*userScoreData, error) {
	modules, err := s.catalogRepo.FindAllModules()
	if err != nil {
		return nil, err
	}
	progress, err := s.progressRepo.AllByUser(userID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.AllByUser(userID)
	if err != nil {
		return nil, err
	}

	data := &userScoreData{
		modules:            modules,
		bestProgress:       make(map[uint]model.MaterialProgress),
		answersByChallenge: make(map[uint][]model.UserAnswer),
		questions:          make(map[uint]model.Question),
	}
	for _, rec := range progress {
		best, ok := data.bestProgress[rec.MaterialID]
		if !ok || rec.Progress > best.Progress {
			data.bestProgress[rec.MaterialID] = rec
		}
	}
	for i := range modules {
		for j := range modules[i].Challenges {
			for _, q := range modules[i].Challenges[j].Questions {
				data.questions[q.ID] = q
			}
		}
	}
	for _, ua := range answers {
		q, ok := data.questions[ua.QuestionID]
		if !ok {
			continue // question removed from the catalog
		}
		data.answersByChallenge[q.ChallengeID] = append(data.answersByChallenge[q.ChallengeID], ua)
	}
	return data, nil
}

func (d *userScoreData) materialScore(m model.Material) dto.MaterialScoreDTO {
	var progress float64
	if rec, ok := d.bestProgress[m.ID]; ok {
		progress = rec.Progress
	}
	return dto.MaterialScoreDTO{
		MaterialID:    m.ID,
		MaterialTitle: m.Title,
		Points:        scoring.FormatPoints(scoring.MaterialPoints(m.Points, progress)),
		Progress:      progress,
	}
}

func (d *userScoreData) challengeScore(c model.Challenge) dto.ChallengeScoreDTO {
	stats := scoring.Accumulate(d.answersByChallenge[c.ID], d.questions)
	return dto.ChallengeScoreDTO{
		ChallengeID:      c.ID,
		ChallengeTitle:   c.Title,
		TotalPoints:      scoring.FormatPoints(stats.TotalPoints),
		CorrectAnswers:   stats.Correct,
		IncorrectAnswers: stats.Incorrect,
		TotalTime:        stats.TotalTimeSeconds,
		Ratio:            stats.Ratio(),
	}
}

func (d *userScoreData) moduleScores() []dto.ModuleScoreDTO {
	out := make([]dto.ModuleScoreDTO, 0, len(d.modules))
	for _, module := range d.modules {
		ms := dto.ModuleScoreDTO{
			ModuleID:    module.ID,
			ModuleTitle: module.Title,
			Materials:   make([]dto.MaterialScoreDTO, 0, len(module.Materials)),
			Challenges:  make([]dto.ChallengeScoreDTO, 0, len(module.Challenges)),
		}
		for _, m := range module.Materials {
			ms.Materials = append(ms.Materials, d.materialScore(m))
		}
		for _, c := range module.Challenges {
			ms.Challenges = append(ms.Challenges, d.challengeScore(c))
		}
		out = append(out, ms)
	}
	return out
}

func (s *scoreService) GetScores(userID uint) (*dto.ScoresResponse, error) {
	data, err := s.fetchUserScoreData(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to assemble score detail")
		return nil, err
	}
	return &dto.ScoresResponse{Modules: data.moduleScores()}, nil
}

func (s *scoreService) GetStatistics(userID uint) (*dto.StatisticsDTO, error) {
	points, seconds, err := s.scoreRepo.ChallengeTotals(userID)
	if err != nil {
		return nil, err
	}
	materialPoints, err := s.scoreRepo.MaterialPointsTotal(userID)
	if err != nil {
		return nil, err
	}
	return &dto.StatisticsDTO{
		TotalChallengePoints: scoring.FormatPoints(points),
		TotalChallengeTime:   seconds,
		TotalMaterialPoints:  scoring.FormatPoints(materialPoints),
	}, nil
}

func (s *scoreService) GetDailyPoints(userID uint, q dto.DailyPointsQuery) ([]dto.DailyPointDTO, error) {
	start, err := time.Parse(dateLayout, q.StartDate)
	if err != nil {
		return nil, apperror.Validationf("start_date %q is not a valid date", q.StartDate)
	}
	end, err := time.Parse(dateLayout, q.EndDate)
	if err != nil {
		return nil, apperror.Validationf("end_date %q is not a valid date", q.EndDate)
	}
	if end.Before(start) {
		return nil, apperror.Validationf("end_date must not be before start_date")
	}

	challengeRows, err := s.scoreRepo.DailyChallengePoints(userID, q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	materialRows, err := s.scoreRepo.DailyMaterialPoints(userID, q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	merged := scoring.MergeDaily(dateSumMap(challengeRows), dateSumMap(materialRows))
	out := make([]dto.DailyPointDTO, 0, len(merged))
	for _, dp := range merged {
		out = append(out, dto.DailyPointDTO{
			Date:        dp.Date,
			TotalPoints: scoring.FormatPoints(dp.TotalPoints),
		})
	}
	return out, nil
}

func (s *scoreService) GetUserDetail(userID uint) (*dto.UserDetailResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.GetStatistics(userID)
	if err != nil {
		return nil, err
	}
	data, err := s.fetchUserScoreData(userID)
	if err != nil {
		return nil, err
	}

	var userResp dto.UserResponse
	if err := copier.Copy(&userResp, user); err != nil {
		return nil, err
	}
	return &dto.UserDetailResponse{
		User:       userResp,
		Statistics: *stats,
		Modules:    data.moduleScores(),
	}, nil
}

func (s *scoreService) GetUserOverview(userID uint) (*dto.UserOverviewDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	data, err := s.fetchUserScoreData(userID)
	if err != nil {
		return nil, err
	}
	return buildOverview(user, data), nil
}

func (s *scoreService) GetAllUserOverviews() ([]dto.UserOverviewDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOverviewDTO, 0, len(users))
	for i := range users {
		data, err := s.fetchUserScoreData(users[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *buildOverview(&users[i], data))
	}
	return out, nil
}

func buildOverview(user *model.User, data *userScoreData) *dto.UserOverviewDTO {
	overview := &dto.UserOverviewDTO{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		AvatarPath: user.AvatarPath,
		Modules:    make([]dto.ModuleOverviewDTO, 0, len(data.modules)),
	}

	var totalPoints float64
	for _, module := range data.modules {
		var modulePoints, progressSum float64
		for _, m := range module.Materials {
			var progress float64
			if rec, ok := data.bestProgress[m.ID]; ok {
				progress = rec.Progress
				if rec.Completed {
					overview.CompletedMaterials++
				}
			}
			progressSum += progress
			modulePoints += scoring.MaterialPoints(m.Points, progress)
			overview.TotalMaterials++
		}
		for _, c := range module.Challenges {
			stats := scoring.Accumulate(data.answersByChallenge[c.ID], data.questions)
			modulePoints += stats.TotalPoints
		}

		avgProgress := 0.0
		if len(module.Materials) > 0 {
			avgProgress = progressSum / float64(len(module.Materials))
		}
		overview.Modules = append(overview.Modules, dto.ModuleOverviewDTO{
			ModuleID:         module.ID,
			Title:            module.Title,
			TotalPoints:      scoring.FormatPoints(modulePoints),
			MaterialProgress: avgProgress,
		})
		totalPoints += modulePoints
	}
	overview.TotalPoints = scoring.FormatPoints(totalPoints)
	return overview
}

func dateSumMap(rows []repository.DateSum) map[string]float64 {
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.Date] += row.Points
	}
	return out
}
