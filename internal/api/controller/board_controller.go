package controller

import (
	"ctchen222/tictactoe-engine/internal/api/models"
	"ctchen222/tictactoe-engine/internal/api/response"
	"ctchen222/tictactoe-engine/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BoardController serves stateless board queries.
type BoardController struct {
	boardService service.BoardService
}

// NewBoardController creates a new BoardController.
func NewBoardController(boardService service.BoardService) *BoardController {
	return &BoardController{
		boardService: boardService,
	}
}

// Evaluate handles the board evaluation endpoint.
func (bc *BoardController) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	verdict, err := bc.boardService.Evaluate(c.Request.Context(), &req)
	if err != nil {
		response.AbortWithError(c, toResponseError(err))
		return
	}
	response.SuccessResponse(c, verdict)
}

// Suggest handles the move suggestion endpoint.
func (bc *BoardController) Suggest(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	suggestion, err := bc.boardService.Suggest(c.Request.Context(), &req)
	if err != nil {
		response.AbortWithError(c, toResponseError(err))
		return
	}
	response.SuccessResponse(c, suggestion)
}
