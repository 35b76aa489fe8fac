package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

// PostgresStorage mirrors the document backends on relational tables. Event
// times stay TEXT columns so the wall-clock ISO strings round-trip
// untouched, and no foreign-key constraints are declared: references may
// dangle here exactly as they do in the other backends.
type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() {
	p.pool.Close()
}

// --- EventRepository ---

const eventColumns = `id, title, category, start_time, end_time, task_id, color, created_at, updated_at`

func scanEvent(row pgx.Row) (*internal.Event, error) {
	var e internal.Event
	err := row.Scan(&e.ID, &e.Title, &e.Category, &e.StartTime, &e.EndTime, &e.TaskID, &e.Color, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (p *PostgresStorage) ListEvents(ctx context.Context) ([]internal.Event, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+eventColumns+` FROM events`)
	if err != nil {
		p.logger.Errorf("failed to query events: %v", err)
		return nil, err
	}
	defer rows.Close()

	list := []internal.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			p.logger.Errorf("failed to scan event: %v", err)
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (p *PostgresStorage) GetEvent(ctx context.Context, id string) (*internal.Event, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (p *PostgresStorage) CreateEvent(ctx context.Context, event *internal.Event) error {
	now := time.Now()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now
	_, err := p.pool.Exec(ctx,
		`INSERT INTO events (`+eventColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.Title, event.Category, event.StartTime, event.EndTime, event.TaskID, event.Color, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert event: %v", err)
	}
	return err
}

func (p *PostgresStorage) UpdateEvent(ctx context.Context, event *internal.Event) error {
	event.UpdatedAt = time.Now()
	tag, err := p.pool.Exec(ctx,
		`UPDATE events SET title = $2, category = $3, start_time = $4, end_time = $5, task_id = $6, color = $7, updated_at = $8 WHERE id = $1`,
		event.ID, event.Title, event.Category, event.StartTime, event.EndTime, event.TaskID, event.Color, event.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to update event: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) DeleteEvent(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete event: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- GoalRepository ---

func (p *PostgresStorage) ListGoals(ctx context.Context) ([]internal.Goal, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, title, color, created_at, updated_at FROM goals`)
	if err != nil {
		p.logger.Errorf("failed to query goals: %v", err)
		return nil, err
	}
	defer rows.Close()

	list := []internal.Goal{}
	for rows.Next() {
		var g internal.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Color, &g.CreatedAt, &g.UpdatedAt); err != nil {
			p.logger.Errorf("failed to scan goal: %v", err)
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (p *PostgresStorage) GetGoal(ctx context.Context, id string) (*internal.Goal, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, title, color, created_at, updated_at FROM goals WHERE id = $1`, id)
	var g internal.Goal
	err := row.Scan(&g.ID, &g.Title, &g.Color, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (p *PostgresStorage) CreateGoal(ctx context.Context, goal *internal.Goal) error {
	now := time.Now()
	goal.ID = uuid.NewString()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	_, err := p.pool.Exec(ctx,
		`INSERT INTO goals (id, title, color, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		goal.ID, goal.Title, goal.Color, goal.CreatedAt, goal.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert goal: %v", err)
	}
	return err
}

// --- TaskRepository ---

func (p *PostgresStorage) ListTasks(ctx context.Context) ([]internal.Task, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT t.id, t.title, t.goal_id, t.completed, t.created_at, t.updated_at,
		        COALESCE(g.title, ''), COALESCE(g.color, '')
		 FROM tasks t LEFT JOIN goals g ON g.id = t.goal_id`)
	if err != nil {
		p.logger.Errorf("failed to query tasks: %v", err)
		return nil, err
	}
	defer rows.Close()

	list := []internal.Task{}
	for rows.Next() {
		var t internal.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.GoalID, &t.Completed, &t.CreatedAt, &t.UpdatedAt, &t.GoalTitle, &t.GoalColor); err != nil {
			p.logger.Errorf("failed to scan task: %v", err)
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (p *PostgresStorage) ListTasksByGoal(ctx context.Context, goalID string) ([]internal.Task, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, title, goal_id, completed, created_at, updated_at FROM tasks WHERE goal_id = $1`, goalID)
	if err != nil {
		p.logger.Errorf("failed to query tasks by goal: %v", err)
		return nil, err
	}
	defer rows.Close()

	list := []internal.Task{}
	for rows.Next() {
		var t internal.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.GoalID, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (p *PostgresStorage) GetTask(ctx context.Context, id string) (*internal.Task, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, title, goal_id, completed, created_at, updated_at FROM tasks WHERE id = $1`, id)
	var t internal.Task
	err := row.Scan(&t.ID, &t.Title, &t.GoalID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (p *PostgresStorage) CreateTask(ctx context.Context, task *internal.Task) error {
	now := time.Now()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := p.pool.Exec(ctx,
		`INSERT INTO tasks (id, title, goal_id, completed, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.Title, task.GoalID, task.Completed, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert task: %v", err)
	}
	return err
}

func (p *PostgresStorage) UpdateTask(ctx context.Context, task *internal.Task) error {
	task.UpdatedAt = time.Now()
	tag, err := p.pool.Exec(ctx,
		`UPDATE tasks SET title = $2, goal_id = $3, completed = $4, updated_at = $5 WHERE id = $1`,
		task.ID, task.Title, task.GoalID, task.Completed, task.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to update task: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) DeleteTask(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete task: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Compile-time assertions ---
var _ EventRepository = (*PostgresStorage)(nil)
var _ GoalRepository = (*PostgresStorage)(nil)
var _ TaskRepository = (*PostgresStorage)(nil)
