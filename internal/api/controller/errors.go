package controller

import (
	"ctchen222/tictactoe-engine/internal/api/response"
	"ctchen222/tictactoe-engine/internal/api/service"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/hub"
	"ctchen222/tictactoe-engine/internal/room"
	"errors"
	"net/http"
)

var badRequestErrors = []error{
	room.ErrInvalidCell,
	room.ErrInvalidMode,
	room.ErrInvalidDifficulty,
	game.ErrInvalidBoard,
	game.ErrInvalidMark,
	service.ErrInvalidDifficulty,
	hub.ErrInvalidMessage,
	hub.ErrMissingCell,
}

var conflictErrors = []error{
	room.ErrCellOccupied,
	room.ErrGameFinished,
	room.ErrNotYourTurn,
	room.ErrNotComputerTurn,
	room.ErrNoMoveAvailable,
	room.ErrNothingToUndo,
}

// toResponseError maps domain errors onto HTTP status codes.
func toResponseError(err error) response.Error {
	if errors.Is(err, hub.ErrRoomNotFound) {
		return response.NewError(http.StatusNotFound, err.Error())
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return response.NewError(http.StatusConflict, err.Error())
		}
	}
	return response.NewError(http.StatusInternalServerError, err.Error())
}
