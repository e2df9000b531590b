package main

import "github.com/pthm-cable/pong/telemetry"

// GameStats is the per-game summary printed by pongstats.
type GameStats struct {
	Game        int    `csv:"game"`
	Speed       string `csv:"speed"`
	PlayerScore int    `csv:"player_score"`
	AIScore     int    `csv:"ai_score"`
	telemetry.Summary
}

// summarizeGames groups points by game, in order of first appearance.
func summarizeGames(points []telemetry.PointRecord) []GameStats {
	var order []int
	byGame := make(map[int][]telemetry.PointRecord)
	for _, p := range points {
		if _, seen := byGame[p.Game]; !seen {
			order = append(order, p.Game)
		}
		byGame[p.Game] = append(byGame[p.Game], p)
	}

	out := make([]GameStats, 0, len(order))
	for _, id := range order {
		pts := byGame[id]
		last := pts[len(pts)-1]
		out = append(out, GameStats{
			Game:        id,
			Speed:       last.Speed,
			PlayerScore: last.PlayerScore,
			AIScore:     last.AIScore,
			Summary:     telemetry.Summarize(pts),
		})
	}
	return out
}
