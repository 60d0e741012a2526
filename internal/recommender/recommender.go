package recommender

import (
	"sort"
	"time"

	"github.com/julianstephens/flowmind/internal/constants"
	"github.com/julianstephens/flowmind/internal/models"
)

type Recommender struct {
	now func() time.Time
}

func New() *Recommender {
	return &Recommender{now: time.Now}
}

// WithClock returns a copy of r that reads the current time from now.
func (r *Recommender) WithClock(now func() time.Time) *Recommender {
	return &Recommender{now: now}
}

// Ranked pairs a task with its score.
type Ranked struct {
	Task  models.Task
	Score int
}

// Rank scores every incomplete task and sorts them by descending score.
// Tasks with equal scores keep their input order.
func (r *Recommender) Rank(tasks []models.Task, emotion models.Emotion, energy models.EnergyLevel) []Ranked {
	now := r.now()
	out := make([]Ranked, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		out = append(out, Ranked{Task: task, Score: Score(task, emotion, energy, now)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Recommend returns at most limit of the best ranked tasks. A non-positive
// limit falls back to the default of three.
func (r *Recommender) Recommend(tasks []models.Task, emotion models.Emotion, energy models.EnergyLevel, limit int) []models.Task {
	if limit <= 0 {
		limit = constants.DefaultRecommendationLimit
	}

	ranked := r.Rank(tasks, emotion, energy)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]models.Task, len(ranked))
	for i, rt := range ranked {
		out[i] = rt.Task
	}
	return out
}
