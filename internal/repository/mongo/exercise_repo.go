package mongo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// Remote documents use the backend's snake_case column convention; the
// in-process model is camelCase. The mapping lives in this file only.
var exerciseFieldColumns = map[repository.Field]string{
	repository.FieldInitialValue:   "initial_value",
	repository.FieldTargetValue:    "target_value",
	repository.FieldCurrentValue:   "current_value",
	repository.FieldWeeklyProgress: "weekly_progress",
	repository.FieldDayOfWeek:      "day_of_week",
}

// exerciseDocument is the remote wire shape of a progress record.
type exerciseDocument struct {
	ID             string              `bson:"_id"`
	Name           string              `bson:"name"`
	InitialValue   int                 `bson:"initial_value"`
	TargetValue    int                 `bson:"target_value"`
	CurrentValue   int                 `bson:"current_value"`
	WeeklyProgress int                 `bson:"weekly_progress"`
	Unit           string              `bson:"unit"`
	DayOfWeek      *int                `bson:"day_of_week,omitempty"`
	WeekValues     map[string]weekCell `bson:"week_values,omitempty"`
	CreatedAt      time.Time           `bson:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at"`
}

type weekCell struct {
	Sets  int    `bson:"sets"`
	Reps  int    `bson:"reps,omitempty"`
	Time  int    `bson:"time,omitempty"`
	Notes string `bson:"notes,omitempty"`
}

func exerciseToDocument(ex *domain.Exercise) exerciseDocument {
	doc := exerciseDocument{
		ID:             ex.ID,
		Name:           ex.Name,
		InitialValue:   ex.InitialValue,
		TargetValue:    ex.TargetValue,
		CurrentValue:   ex.CurrentValue,
		WeeklyProgress: ex.WeeklyProgress,
		Unit:           string(ex.Unit),
		DayOfWeek:      ex.DayOfWeek,
		CreatedAt:      ex.CreatedAt,
		UpdatedAt:      ex.UpdatedAt,
	}
	if len(ex.WeekValues) > 0 {
		doc.WeekValues = make(map[string]weekCell, len(ex.WeekValues))
		for week, cell := range ex.WeekValues {
			doc.WeekValues[strconv.Itoa(week)] = weekCell(cell)
		}
	}
	return doc
}

func (doc *exerciseDocument) toDomain() domain.Exercise {
	ex := domain.Exercise{
		ID:             doc.ID,
		Name:           doc.Name,
		InitialValue:   doc.InitialValue,
		TargetValue:    doc.TargetValue,
		CurrentValue:   doc.CurrentValue,
		WeeklyProgress: doc.WeeklyProgress,
		Unit:           repository.NormalizeUnit(doc.Unit),
		DayOfWeek:      doc.DayOfWeek,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
	if len(doc.WeekValues) > 0 {
		ex.WeekValues = make(map[int]domain.WeekCell, len(doc.WeekValues))
		for key, cell := range doc.WeekValues {
			week, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			ex.WeekValues[week] = domain.WeekCell(cell)
		}
	}
	return ex
}

// mongoExerciseRepository implements repository.ExerciseRepository.
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewExerciseRepository creates an exercise repository backed by MongoDB.
func NewExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// List retrieves all progress records, oldest first.
func (r *mongoExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []exerciseDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	exercises := make([]domain.Exercise, 0, len(docs))
	for i := range docs {
		exercises = append(exercises, docs[i].toDomain())
	}
	return exercises, nil
}

// Create inserts a new progress record, assigning an id when none is set.
func (r *mongoExerciseRepository) Create(ctx context.Context, ex *domain.Exercise) (string, error) {
	if ex.Name == "" {
		return "", errors.New("exercise name is required")
	}

	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = now
	}
	ex.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, exerciseToDocument(ex)); err != nil {
		return "", err
	}
	return ex.ID, nil
}

// UpdateField writes a single column. The zero value is persisted like
// any other; only the named field and the updated_at stamp change.
func (r *mongoExerciseRepository) UpdateField(ctx context.Context, id string, field repository.Field, value int) error {
	column, ok := exerciseFieldColumns[field]
	if !ok {
		return repository.ErrUpdateFailed
	}

	update := bson.M{
		"$set": bson.M{
			column:       value,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a progress record. Daily checklist rows that reference
// it are intentionally left behind.
func (r *mongoExerciseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureExerciseIndexes creates the indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
