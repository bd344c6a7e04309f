package service

import (
	"context"
	"ctchen222/tictactoe-engine/internal/api/models"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/random/mocks"
	"ctchen222/tictactoe-engine/pkg/proto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBoardService_Evaluate(t *testing.T) {
	s := NewBoardService(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		board   string
		want    proto.VerdictMessage
		wantErr error
	}{
		{name: "Row win", board: "XXXOO----", want: proto.VerdictMessage{Outcome: "win", Winner: game.PlayerX, Line: []int{0, 1, 2}}},
		{name: "Draw", board: "XOXXOOOXX", want: proto.VerdictMessage{Outcome: "draw"}},
		{name: "In progress", board: "---------", want: proto.VerdictMessage{Outcome: "in_progress"}},
		{name: "Too short", board: "XO", wantErr: game.ErrInvalidBoard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Evaluate(ctx, &models.EvaluateRequest{Board: tt.board})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoardService_EvaluateCells(t *testing.T) {
	s := NewBoardService(nil)
	ctx := context.Background()

	got, err := s.Evaluate(ctx, &models.EvaluateRequest{
		Board: "---------",
		Cells: []game.PlayerMark{"O", "X", "X", "", "O", "", "X", "", "O"},
	})
	require.NoError(t, err)
	assert.Equal(t, proto.VerdictMessage{Outcome: "win", Winner: game.PlayerO, Line: []int{0, 4, 8}}, got)

	_, err = s.Evaluate(ctx, &models.EvaluateRequest{Cells: []game.PlayerMark{"X", "O"}})
	require.ErrorIs(t, err, game.ErrInvalidBoard)

	_, err = s.Evaluate(ctx, &models.EvaluateRequest{Cells: []game.PlayerMark{"Q", "", "", "", "", "", "", "", ""}})
	require.ErrorIs(t, err, game.ErrInvalidBoard)
}

func TestBoardService_Suggest(t *testing.T) {
	ctx := context.Background()

	t.Run("Mover defaults to O and takes the win", func(t *testing.T) {
		s := NewBoardService(nil)
		got, err := s.Suggest(ctx, &models.SuggestRequest{Board: "XX-OO----"})
		require.NoError(t, err)
		require.True(t, got.Found)
		assert.Equal(t, 5, *got.Cell)
	})

	t.Run("X takes its own win", func(t *testing.T) {
		s := NewBoardService(nil)
		got, err := s.Suggest(ctx, &models.SuggestRequest{Board: "XX-OO----", Mover: "x"})
		require.NoError(t, err)
		assert.Equal(t, 2, *got.Cell)
	})

	t.Run("Corner choice uses the injected random", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rnd := mocks.NewMockRandom(ctrl)
		rnd.EXPECT().Intn(2).Return(0)

		s := NewBoardService(rnd)
		got, err := s.Suggest(ctx, &models.SuggestRequest{Board: "X---O---X", Difficulty: "hard"})
		require.NoError(t, err)
		assert.Equal(t, 2, *got.Cell)
	})

	t.Run("Cells array", func(t *testing.T) {
		s := NewBoardService(nil)
		got, err := s.Suggest(ctx, &models.SuggestRequest{Cells: []game.PlayerMark{"X", "X", "", "", "", "", "", "", ""}})
		require.NoError(t, err)
		assert.Equal(t, 2, *got.Cell)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		s := NewBoardService(nil)
		got, err := s.Suggest(ctx, &models.SuggestRequest{Board: "XOXXOOOXX"})
		require.NoError(t, err)
		assert.False(t, got.Found)
		assert.Nil(t, got.Cell)
	})

	t.Run("Invalid input", func(t *testing.T) {
		s := NewBoardService(nil)
		_, err := s.Suggest(ctx, &models.SuggestRequest{Board: "XX-OO----", Mover: "Z"})
		require.ErrorIs(t, err, game.ErrInvalidMark)

		_, err = s.Suggest(ctx, &models.SuggestRequest{Board: "XX-OO----", Difficulty: "godlike"})
		require.ErrorIs(t, err, ErrInvalidDifficulty)

		_, err = s.Suggest(ctx, &models.SuggestRequest{Board: "XX-OO---"})
		require.ErrorIs(t, err, game.ErrInvalidBoard)
	})
}
