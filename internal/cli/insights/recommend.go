package insights

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/recommender"
)

// RecommendCmd ranks pending tasks against today's check-in.
type RecommendCmd struct {
	Limit int  `short:"n" help:"Number of tasks to suggest." default:"3"`
	All   bool `short:"a" help:"Show every pending task with its score."`
}

func (c *RecommendCmd) Run(ctx *cli.Context) error {
	checkin, ok, err := ctx.TodaysCheckin()
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("No check-in for today yet. Run 'flowmind checkin' to get recommendations.")
		return nil
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	rec := ctx.Recommender
	if rec == nil {
		rec = recommender.New()
	}

	ctx.Printf("Feeling %s with %s energy.\n", checkin.Emotion, checkin.Energy)

	if c.All {
		ranked := rec.Rank(tasks, checkin.Emotion, checkin.Energy)
		if len(ranked) == 0 {
			ctx.Println("No pending tasks.")
			return nil
		}
		for _, r := range ranked {
			ctx.Printf("  %3d  %s\n", r.Score, cli.FormatTask(r.Task))
		}
		return nil
	}

	picks := rec.Recommend(tasks, checkin.Emotion, checkin.Energy, c.Limit)
	if len(picks) == 0 {
		ctx.Println("No pending tasks.")
		return nil
	}
	for i, t := range picks {
		ctx.Printf("  %d. %s\n", i+1, cli.FormatTask(t))
	}
	return nil
}
