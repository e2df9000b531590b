// Package main summarizes a points.csv match log written by the game.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/pong/telemetry"
)

func main() {
	// CLI flags
	pointsPath := flag.String("points", "", "Path to points.csv (required)")
	format := flag.String("format", "text", "Output format: text or csv")
	flag.Parse()

	if *pointsPath == "" {
		log.Fatal("--points is required")
	}

	points, err := telemetry.ReadPoints(*pointsPath)
	if err != nil {
		log.Fatalf("failed to read points: %v", err)
	}

	games := summarizeGames(points)

	switch *format {
	case "csv":
		if err := gocsv.Marshal(games, os.Stdout); err != nil {
			log.Fatalf("failed to write csv: %v", err)
		}
	case "text":
		writeText(os.Stdout, games)
	default:
		log.Fatalf("unknown format %q", *format)
	}
}

func writeText(w io.Writer, games []GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "no points recorded")
		return
	}
	for _, g := range games {
		fmt.Fprintf(w, "game %d (%s): player %d - ai %d over %d points\n",
			g.Game, g.Speed, g.PlayerScore, g.AIScore, g.Points)
		fmt.Fprintf(w, "  rally hits: mean %.2f  std %.2f  p50 %.0f  p90 %.0f  max %.0f\n",
			g.RallyMean, g.RallyStd, g.RallyP50, g.RallyP90, g.RallyMax)
		fmt.Fprintf(w, "  point ticks: mean %.1f  p50 %.0f\n", g.TicksMean, g.TicksP50)
	}
}
