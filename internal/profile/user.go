// internal/profile/user.go
package profile

// User is a saved player profile.
type User struct {
	Name      string `json:"name"`
	Score     int    `json:"score"` // cumulative kills over every saved session
	HighScore int    `json:"highScore"`
}

// AddScore adds kills to the cumulative score and raises the high score
// if the new total beats it.
func (u *User) AddScore(kills int) {
	u.Score += kills
	if u.Score > u.HighScore {
		u.HighScore = u.Score
	}
}

// Entry is one leaderboard row.
type Entry struct {
	Rank  int
	Name  string
	Score int
}
