package server

import (
	"ctchen222/tictactoe-engine/internal/api/controller"
	"ctchen222/tictactoe-engine/internal/api/response"
	"ctchen222/tictactoe-engine/internal/hub"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("server")

type Server struct {
	hub      *hub.Hub
	engine   *gin.Engine
	upgrader websocket.Upgrader
}

func NewServer(h *hub.Hub, roomController *controller.RoomController, boardController *controller.BoardController) *Server {
	s := &Server{
		hub:    h,
		engine: gin.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine.Use(gin.Recovery())
	s.registerRoutes(roomController, boardController)
	return s
}

// Engine exposes the gin engine as the http.Handler.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes(rc *controller.RoomController, bc *controller.BoardController) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponseContent(c, "ok")
	})

	api := s.engine.Group("/api")
	{
		api.POST("/evaluate", bc.Evaluate)
		api.POST("/suggest", bc.Suggest)

		rooms := api.Group("/rooms")
		rooms.POST("", rc.Create)
		rooms.GET("/:id", rc.Get)
		rooms.DELETE("/:id", rc.Delete)
		rooms.POST("/:id/moves", rc.Move)
		rooms.POST("/:id/undo", rc.Undo)
		rooms.POST("/:id/restart", rc.Restart)
		rooms.POST("/:id/reset-score", rc.ResetScore)
		rooms.PUT("/:id/mode", rc.ChangeMode)
		rooms.PUT("/:id/difficulty", rc.ChangeDifficulty)
	}

	s.engine.GET("/ws/rooms/:id", s.handleWebSocket)
}
