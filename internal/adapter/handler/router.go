package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mockmind/mockmind-api/internal/infrastructure/http/middleware"
	"github.com/mockmind/mockmind-api/pkg/config"
	"github.com/mockmind/mockmind-api/pkg/token"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	tokens           *token.Manager
	questionHandler  *Question
	interviewHandler *Interview
	speechHandler    *Speech
	historyHandler   *History
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	tokens *token.Manager,
	questionHandler *Question,
	interviewHandler *Interview,
	speechHandler *Speech,
	historyHandler *History,
) *Router {
	return &Router{
		cfg:              cfg,
		tokens:           tokens,
		questionHandler:  questionHandler,
		interviewHandler: interviewHandler,
		speechHandler:    speechHandler,
		historyHandler:   historyHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupQuestionRoutes(v1)
	rt.setupInterviewRoutes(v1)
	rt.setupSpeechRoutes(v1)
	rt.setupHistoryRoutes(v1)
}

// setupQuestionRoutes configures question generation routes
func (rt *Router) setupQuestionRoutes(g *echo.Group) {
	g.POST("/questions/generate", rt.questionHandler.Generate)
}

// setupInterviewRoutes configures interview session routes. Creation is open;
// everything scoped to a session requires its token.
func (rt *Router) setupInterviewRoutes(g *echo.Group) {
	interviews := g.Group("/interviews")
	interviews.POST("", rt.interviewHandler.Create)

	session := interviews.Group("/:id", middleware.SessionAuth(rt.tokens))
	session.GET("", rt.interviewHandler.Get)
	session.POST("/start", rt.interviewHandler.Start)
	session.POST("/answers", rt.interviewHandler.SubmitAnswer)
	session.POST("/end", rt.interviewHandler.End)
	session.POST("/feedback", rt.interviewHandler.Feedback)
}

// setupSpeechRoutes configures text-to-speech routes
func (rt *Router) setupSpeechRoutes(g *echo.Group) {
	g.POST("/speech/synthesize", rt.speechHandler.Synthesize)
}

// setupHistoryRoutes configures session history routes
func (rt *Router) setupHistoryRoutes(g *echo.Group) {
	g.GET("/history", rt.historyHandler.List)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
