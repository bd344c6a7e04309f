package hub

import (
	"context"
	"ctchen222/tictactoe-engine/internal/game"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type hubMetrics struct {
	moves  metric.Int64Counter
	rounds metric.Int64Counter
}

func newHubMetrics() *hubMetrics {
	meter := otel.Meter("hub")

	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Marks placed on any board"),
	)
	if err != nil {
		slog.Warn("Could not create moves counter", "error", err)
		moves = noop.Int64Counter{}
	}

	rounds, err := meter.Int64Counter("tictactoe.rounds.finished",
		metric.WithDescription("Rounds that ended in a win or a draw"),
	)
	if err != nil {
		slog.Warn("Could not create rounds counter", "error", err)
		rounds = noop.Int64Counter{}
	}

	return &hubMetrics{moves: moves, rounds: rounds}
}

func (m *hubMetrics) recordMove(ctx context.Context, automated bool, verdict game.Verdict) {
	m.moves.Add(ctx, 1, metric.WithAttributes(attribute.Bool("move.automated", automated)))
	if verdict.IsOver() {
		m.rounds.Add(ctx, 1, metric.WithAttributes(attribute.String("round.outcome", outcomeLabel(verdict))))
	}
}
