package internal

import "time"

// Category labels an event for presentation. The set is closed; unknown
// values are rejected at the API boundary.
type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryEating   Category = "eating"
	CategoryWork     Category = "work"
	CategoryRelax    Category = "relax"
	CategoryFamily   Category = "family"
	CategorySocial   Category = "social"
)

// Categories lists every valid category label.
var Categories = []Category{
	CategoryExercise,
	CategoryEating,
	CategoryWork,
	CategoryRelax,
	CategoryFamily,
	CategorySocial,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Event is a timed calendar entry. StartTime and EndTime are carried as
// ISO-8601 strings with wall-clock semantics end to end; StartTime < EndTime
// is expected but never enforced. TaskID is a soft reference: deleting the
// task leaves it dangling.
type Event struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Category  Category  `json:"category" bson:"category"`
	StartTime string    `json:"startTime" bson:"startTime"`
	EndTime   string    `json:"endTime" bson:"endTime"`
	TaskID    string    `json:"taskId,omitempty" bson:"taskId,omitempty"`
	Color     string    `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Task belongs to a goal via GoalID (soft reference, existence never
// checked). GoalTitle and GoalColor are populated on list responses only.
type Task struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	GoalID    string    `json:"goalId" bson:"goalId"`
	Completed bool      `json:"completed" bson:"completed"`
	GoalTitle string    `json:"goalTitle,omitempty" bson:"-"`
	GoalColor string    `json:"goalColor,omitempty" bson:"-"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Goal is a leaf entity; tasks point at it, it stores no back-references.
type Goal struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Color     string    `json:"color" bson:"color"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
