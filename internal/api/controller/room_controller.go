package controller

import (
	"context"
	"ctchen222/tictactoe-engine/internal/api/models"
	"ctchen222/tictactoe-engine/internal/api/response"
	"ctchen222/tictactoe-engine/internal/hub/types"
	"ctchen222/tictactoe-engine/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoomService is the subset of the hub the HTTP API drives.
type RoomService interface {
	CreateRoom(ctx context.Context, req types.CreateRoomRequest) (proto.RoomState, error)
	State(ctx context.Context, roomID string) (proto.RoomState, error)
	CloseRoom(ctx context.Context, roomID string) error
	Play(ctx context.Context, roomID string, cell int) (proto.RoomState, error)
	Undo(ctx context.Context, roomID string) (proto.RoomState, error)
	Restart(ctx context.Context, roomID string) (proto.RoomState, error)
	ResetScore(ctx context.Context, roomID string) (proto.RoomState, error)
	ChangeMode(ctx context.Context, roomID, mode string) (proto.RoomState, error)
	ChangeDifficulty(ctx context.Context, roomID, difficulty string) (proto.RoomState, error)
}

// RoomController handles room-related HTTP requests.
type RoomController struct {
	rooms RoomService
}

// NewRoomController creates a new RoomController.
func NewRoomController(rooms RoomService) *RoomController {
	return &RoomController{
		rooms: rooms,
	}
}

// Create opens a room. An empty body takes the server defaults.
func (rc *RoomController) Create(c *gin.Context) {
	var req types.CreateRoomRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	state, err := rc.rooms.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.AbortWithError(c, toResponseError(err))
		return
	}
	response.CreatedResponse(c, state)
}

// Get returns the room state.
func (rc *RoomController) Get(c *gin.Context) {
	state, err := rc.rooms.State(c.Request.Context(), c.Param("id"))
	rc.respond(c, state, err)
}

// Delete closes the room and its websocket clients.
func (rc *RoomController) Delete(c *gin.Context) {
	if err := rc.rooms.CloseRoom(c.Request.Context(), c.Param("id")); err != nil {
		response.AbortWithError(c, toResponseError(err))
		return
	}
	response.SuccessResponseContent(c, "room closed")
}

// Move places the human's mark.
func (rc *RoomController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	state, err := rc.rooms.Play(c.Request.Context(), c.Param("id"), *req.Cell)
	rc.respond(c, state, err)
}

func (rc *RoomController) Undo(c *gin.Context) {
	state, err := rc.rooms.Undo(c.Request.Context(), c.Param("id"))
	rc.respond(c, state, err)
}

func (rc *RoomController) Restart(c *gin.Context) {
	state, err := rc.rooms.Restart(c.Request.Context(), c.Param("id"))
	rc.respond(c, state, err)
}

func (rc *RoomController) ResetScore(c *gin.Context) {
	state, err := rc.rooms.ResetScore(c.Request.Context(), c.Param("id"))
	rc.respond(c, state, err)
}

// ChangeMode switches the mode and restarts the round.
func (rc *RoomController) ChangeMode(c *gin.Context) {
	var req models.ModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	state, err := rc.rooms.ChangeMode(c.Request.Context(), c.Param("id"), req.Mode)
	rc.respond(c, state, err)
}

// ChangeDifficulty sets the computer's difficulty.
func (rc *RoomController) ChangeDifficulty(c *gin.Context) {
	var req models.DifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	state, err := rc.rooms.ChangeDifficulty(c.Request.Context(), c.Param("id"), req.Difficulty)
	rc.respond(c, state, err)
}

func (rc *RoomController) respond(c *gin.Context, state proto.RoomState, err error) {
	if err != nil {
		response.AbortWithError(c, toResponseError(err))
		return
	}
	response.SuccessResponse(c, state)
}
