package model

// Goals are user-defined targets used purely for progress display.
// They live only in the client's local store, never on the server.
// A nil field means the goal is unset.
type Goals struct {
	StreakGoal *int `json:"streakGoal"`
	WeeklyGoal *int `json:"weeklyGoal"`
	TotalGoal  *int `json:"totalGoal"`
}
