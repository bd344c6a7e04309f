package service

import (
	"context"
	"ctchen222/tictactoe-engine/internal/api/models"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/random"
	"ctchen222/tictactoe-engine/pkg/proto"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("service")

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// BoardService answers stateless questions about a single board.
type BoardService interface {
	Evaluate(ctx context.Context, req *models.EvaluateRequest) (proto.VerdictMessage, error)
	Suggest(ctx context.Context, req *models.SuggestRequest) (models.SuggestResponse, error)
}

type boardService struct {
	rnd random.Random
}

// NewBoardService creates a BoardService that breaks bot ties with rnd.
func NewBoardService(rnd random.Random) BoardService {
	return &boardService{rnd: rnd}
}

// Evaluate reports whether the board is won, drawn or still in progress.
func (s *boardService) Evaluate(ctx context.Context, req *models.EvaluateRequest) (proto.VerdictMessage, error) {
	_, span := tracer.Start(ctx, "service.Evaluate", trace.WithAttributes(
		attribute.String("board", req.Board),
	))
	defer span.End()

	board, err := requestBoard(req.Board, req.Cells)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid board")
		return proto.VerdictMessage{}, err
	}
	return proto.NewVerdictMessage(game.Evaluate(board)), nil
}

// Suggest picks the move the bot would play. Mover defaults to O.
func (s *boardService) Suggest(ctx context.Context, req *models.SuggestRequest) (models.SuggestResponse, error) {
	_, span := tracer.Start(ctx, "service.Suggest", trace.WithAttributes(
		attribute.String("board", req.Board),
		attribute.String("player.mark", req.Mover),
		attribute.String("bot.difficulty", req.Difficulty),
	))
	defer span.End()

	board, err := requestBoard(req.Board, req.Cells)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid board")
		return models.SuggestResponse{}, err
	}

	mover := game.PlayerO
	if req.Mover != "" {
		if mover, err = game.ParseMark(req.Mover); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Invalid mover")
			return models.SuggestResponse{}, err
		}
	}

	difficulty, err := bot.ParseDifficulty(req.Difficulty)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidDifficulty, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid difficulty")
		return models.SuggestResponse{}, err
	}

	cell, found := bot.CalculateNextMove(board, mover, difficulty, s.rnd)
	if !found {
		return models.SuggestResponse{}, nil
	}
	span.SetAttributes(attribute.Int("move.cell", cell))
	return models.SuggestResponse{Cell: &cell, Found: true}, nil
}

// requestBoard prefers the cells array when one was sent.
func requestBoard(board string, cells []game.PlayerMark) (game.Board, error) {
	if cells != nil {
		return game.BoardFromCells(cells)
	}
	return game.ParseBoard(board)
}
