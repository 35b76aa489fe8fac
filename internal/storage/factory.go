package storage

import (
	"context"
	"fmt"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/config"
)

// Repositories bundles the three entity repositories plus the backend's
// close hook.
type Repositories struct {
	Events EventRepository
	Goals  GoalRepository
	Tasks  TaskRepository
	Close  func() error
}

func NewRepositories(ctx context.Context, cfg *config.Config, logger internal.Logger) (*Repositories, error) {
	switch cfg.DBType {
	case "mongo":
		s, err := NewMongoStorage(ctx, cfg.MongoURI, cfg.MongoDB, logger)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Events: s, Goals: s, Tasks: s,
			Close: func() error { return s.Close(context.Background()) },
		}, nil
	case "postgres":
		s, err := NewPostgresStorage(cfg.DBDSN, logger)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Events: s, Goals: s, Tasks: s,
			Close: func() error { s.Close(); return nil },
		}, nil
	case "file":
		s, err := NewFileStorage(cfg.FileEvents, cfg.FileGoals, cfg.FileTasks, logger)
		if err != nil {
			return nil, err
		}
		return &Repositories{Events: s, Goals: s, Tasks: s, Close: s.Close}, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.DBType)
	}
}
