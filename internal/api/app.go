package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Events() storage.EventRepository
	Goals() storage.GoalRepository
	Tasks() storage.TaskRepository
}

type Server struct {
	logger internal.Logger
	repos  *storage.Repositories
}

func NewServer(logger internal.Logger, repos *storage.Repositories) *Server {
	return &Server{logger: logger, repos: repos}
}

func (s *Server) Logger() internal.Logger         { return s.logger }
func (s *Server) Events() storage.EventRepository { return s.repos.Events }
func (s *Server) Goals() storage.GoalRepository   { return s.repos.Goals }
func (s *Server) Tasks() storage.TaskRepository   { return s.repos.Tasks }

// RegisterRoutes wires the full REST surface onto r.
func RegisterRoutes(r *gin.Engine, app App) {
	r.GET("/", func(c *gin.Context) {
		c.String(200, "API is running...")
	})

	events := r.Group("/api/events")
	{
		events.GET("", ListEvents(app))
		events.GET("/ics", ExportEventsICS(app))
		events.GET("/:id", GetEvent(app))
		events.POST("", PostEvent(app))
		events.PUT("/:id", PutEvent(app))
		events.DELETE("/:id", DeleteEvent(app))
	}

	goals := r.Group("/api/goals")
	{
		goals.GET("", ListGoals(app))
		goals.GET("/:id", GetGoal(app))
		goals.POST("", PostGoal(app))
	}

	tasks := r.Group("/api/tasks")
	{
		tasks.GET("", ListTasks(app))
		tasks.GET("/goal/:goalId", ListTasksByGoal(app))
		tasks.POST("", PostTask(app))
		tasks.PUT("/:id", PutTask(app))
	}
}
