package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

// MongoStorage is the document-store backend: one collection per entity,
// ObjectID hex strings as the opaque identifiers. No multi-document
// transactions; taskId/goalId references are never checked.
type MongoStorage struct {
	client *mongo.Client
	events *mongo.Collection
	goals  *mongo.Collection
	tasks  *mongo.Collection
	logger internal.Logger
}

func NewMongoStorage(ctx context.Context, uri, dbName string, logger internal.Logger) (*MongoStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("failed to connect to mongo: %v", err)
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Errorf("failed to ping mongo: %v", err)
		return nil, err
	}
	db := client.Database(dbName)
	return &MongoStorage{
		client: client,
		events: db.Collection("events"),
		goals:  db.Collection("goals"),
		tasks:  db.Collection("tasks"),
		logger: logger,
	}, nil
}

func (m *MongoStorage) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// --- EventRepository ---

func (m *MongoStorage) ListEvents(ctx context.Context) ([]internal.Event, error) {
	cur, err := m.events.Find(ctx, bson.M{})
	if err != nil {
		m.logger.Errorf("failed to query events: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	list := []internal.Event{}
	if err := cur.All(ctx, &list); err != nil {
		m.logger.Errorf("failed to decode events: %v", err)
		return nil, err
	}
	return list, nil
}

func (m *MongoStorage) GetEvent(ctx context.Context, id string) (*internal.Event, error) {
	var e internal.Event
	err := m.events.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (m *MongoStorage) CreateEvent(ctx context.Context, event *internal.Event) error {
	now := time.Now()
	event.ID = primitive.NewObjectID().Hex()
	event.CreatedAt = now
	event.UpdatedAt = now
	_, err := m.events.InsertOne(ctx, event)
	if err != nil {
		m.logger.Errorf("failed to insert event: %v", err)
	}
	return err
}

func (m *MongoStorage) UpdateEvent(ctx context.Context, event *internal.Event) error {
	event.UpdatedAt = time.Now()
	res, err := m.events.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		m.logger.Errorf("failed to replace event: %v", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) DeleteEvent(ctx context.Context, id string) error {
	res, err := m.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		m.logger.Errorf("failed to delete event: %v", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- GoalRepository ---

func (m *MongoStorage) ListGoals(ctx context.Context) ([]internal.Goal, error) {
	cur, err := m.goals.Find(ctx, bson.M{})
	if err != nil {
		m.logger.Errorf("failed to query goals: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	list := []internal.Goal{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *MongoStorage) GetGoal(ctx context.Context, id string) (*internal.Goal, error) {
	var g internal.Goal
	err := m.goals.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (m *MongoStorage) CreateGoal(ctx context.Context, goal *internal.Goal) error {
	now := time.Now()
	goal.ID = primitive.NewObjectID().Hex()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	_, err := m.goals.InsertOne(ctx, goal)
	if err != nil {
		m.logger.Errorf("failed to insert goal: %v", err)
	}
	return err
}

// --- TaskRepository ---

func (m *MongoStorage) ListTasks(ctx context.Context) ([]internal.Task, error) {
	cur, err := m.tasks.Find(ctx, bson.M{})
	if err != nil {
		m.logger.Errorf("failed to query tasks: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	list := []internal.Task{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}

	// Join goal title/color with a second query, mirroring the original
	// populate. Dangling goalIds are left unjoined.
	goals, err := m.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]internal.Goal, len(goals))
	for _, g := range goals {
		byID[g.ID] = g
	}
	for i := range list {
		if g, ok := byID[list[i].GoalID]; ok {
			list[i].GoalTitle = g.Title
			list[i].GoalColor = g.Color
		}
	}
	return list, nil
}

func (m *MongoStorage) ListTasksByGoal(ctx context.Context, goalID string) ([]internal.Task, error) {
	cur, err := m.tasks.Find(ctx, bson.M{"goalId": goalID})
	if err != nil {
		m.logger.Errorf("failed to query tasks by goal: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	list := []internal.Task{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *MongoStorage) GetTask(ctx context.Context, id string) (*internal.Task, error) {
	var t internal.Task
	err := m.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (m *MongoStorage) CreateTask(ctx context.Context, task *internal.Task) error {
	now := time.Now()
	task.ID = primitive.NewObjectID().Hex()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := m.tasks.InsertOne(ctx, task)
	if err != nil {
		m.logger.Errorf("failed to insert task: %v", err)
	}
	return err
}

func (m *MongoStorage) UpdateTask(ctx context.Context, task *internal.Task) error {
	task.UpdatedAt = time.Now()
	res, err := m.tasks.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		m.logger.Errorf("failed to replace task: %v", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) DeleteTask(ctx context.Context, id string) error {
	res, err := m.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		m.logger.Errorf("failed to delete task: %v", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Compile-time assertions ---
var _ EventRepository = (*MongoStorage)(nil)
var _ GoalRepository = (*MongoStorage)(nil)
var _ TaskRepository = (*MongoStorage)(nil)
