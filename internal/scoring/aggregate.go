package scoring

// ComponentScores are the four independent component scores, each in [0,100].
type ComponentScores struct {
	Skill      float64 `json:"skill_score"`
	Experience float64 `json:"experience_score"`
	Education  float64 `json:"education_score"`
	Project    float64 `json:"project_score"`
}

// Aggregate combines component scores with the given weights. The result is
// clamped to [0,100] and rounded half-up to two decimals.
func Aggregate(c ComponentScores, w Weights) float64 {
	total := c.Skill*w.Skill +
		c.Experience*w.Experience +
		c.Education*w.Education +
		c.Project*w.Project
	return Round2(Clamp(total))
}
