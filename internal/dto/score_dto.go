package dto

// Point and ratio fields are fixed 4-decimal strings ("12.5000") so clients
// never see binary-float rounding artifacts. Counts and seconds are ints.

type MaterialScoreDTO struct {
	MaterialID    uint    `json:"material_id"`
	MaterialTitle string  `json:"material_title"`
	Points        string  `json:"points"`
	Progress      float64 `json:"progress"`
}

type ChallengeScoreDTO struct {
	ChallengeID      uint   `json:"challenge_id"`
	ChallengeTitle   string `json:"challenge_title"`
	TotalPoints      string `json:"total_points"`
	CorrectAnswers   int    `json:"correct_answers"`
	IncorrectAnswers int    `json:"incorrect_answers"`
	TotalTime        int64  `json:"total_time"` // seconds
	Ratio            string `json:"ratio"`      // points per second
}

type ModuleScoreDTO struct {
	ModuleID    uint                `json:"module_id"`
	ModuleTitle string              `json:"module_title"`
	Materials   []MaterialScoreDTO  `json:"materials"`
	Challenges  []ChallengeScoreDTO `json:"challenges"`
}

type ScoresResponse struct {
	Modules []ModuleScoreDTO `json:"modules"`
}

type StatisticsDTO struct {
	TotalChallengePoints string `json:"total_challenge_points"`
	TotalChallengeTime   int64  `json:"total_challenge_time"` // seconds
	TotalMaterialPoints  string `json:"total_material_points"`
}

type DailyPointDTO struct {
	Date        string `json:"date"` // "2006-01-02"
	TotalPoints string `json:"total_points"`
}

type UserDetailResponse struct {
	User       UserResponse     `json:"user"`
	Statistics StatisticsDTO    `json:"statistics"`
	Modules    []ModuleScoreDTO `json:"modules"`
}

// ModuleOverviewDTO is one module row in the overview fan-out: combined
// material + challenge points and the average material progress.
type ModuleOverviewDTO struct {
	ModuleID         uint    `json:"module_id"`
	Title            string  `json:"title"`
	TotalPoints      string  `json:"total_points"`
	MaterialProgress float64 `json:"material_progress"` // average 0-100
}

type UserOverviewDTO struct {
	UserID             uint                `json:"user_id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	AvatarPath         *string             `json:"avatar_path,omitempty"`
	TotalPoints        string              `json:"total_points"`
	CompletedMaterials int                 `json:"completed_materials"`
	TotalMaterials     int                 `json:"total_materials"`
	Modules            []ModuleOverviewDTO `json:"modules"`
}

type LeaderboardEntryDTO struct {
	Nickname             string  `json:"nickname"`
	AvatarPath           *string `json:"avatar_path,omitempty"`
	TotalChallengePoints string  `json:"total_challenge_points"`
	TotalMaterialPoints  string  `json:"total_material_points"`
	TotalChallengeTime   int64   `json:"total_challenge_time"` // seconds
}
