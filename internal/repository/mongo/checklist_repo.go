package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const checklistCollectionName = "daily_checklists"

// checklistDocument is the remote wire shape of a daily log entry.
// reps_done doubles as "seconds held" for time-based exercises.
type checklistDocument struct {
	ID         string    `bson:"_id"`
	Date       string    `bson:"date"`
	ExerciseID string    `bson:"exercise_id"`
	Completed  bool      `bson:"completed"`
	Notes      string    `bson:"notes,omitempty"`
	RepsDone   *int      `bson:"reps_done,omitempty"`
	SetsDone   *int      `bson:"sets_done,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func (doc *checklistDocument) toDomain() domain.Checklist {
	return domain.Checklist{
		ID:         doc.ID,
		Date:       doc.Date,
		ExerciseID: doc.ExerciseID,
		Completed:  doc.Completed,
		Notes:      doc.Notes,
		RepsDone:   doc.RepsDone,
		SetsDone:   doc.SetsDone,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

// mongoChecklistRepository implements repository.ChecklistRepository.
type mongoChecklistRepository struct {
	collection *mongo.Collection
}

// NewChecklistRepository creates a daily checklist repository backed by
// MongoDB.
func NewChecklistRepository(db *mongo.Database) repository.ChecklistRepository {
	return &mongoChecklistRepository{
		collection: db.Collection(checklistCollectionName),
	}
}

// ListForDate returns all entries logged on the given calendar day.
func (r *mongoChecklistRepository) ListForDate(ctx context.Context, date string) ([]domain.Checklist, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"date": date}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []checklistDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]domain.Checklist, 0, len(docs))
	for i := range docs {
		entries = append(entries, docs[i].toDomain())
	}
	return entries, nil
}

// Upsert inserts or overwrites the single entry for the entry's
// (date, exercise_id) pair and returns the stored document, so the
// caller reads back authoritative values with no staleness.
func (r *mongoChecklistRepository) Upsert(ctx context.Context, entry domain.Checklist) (*domain.Checklist, error) {
	if entry.Date == "" || entry.ExerciseID == "" {
		return nil, errors.New("checklist date and exercise id are required")
	}

	now := time.Now().UTC()
	filter := bson.M{"date": entry.Date, "exercise_id": entry.ExerciseID}
	update := bson.M{
		"$set": bson.M{
			"completed":  entry.Completed,
			"notes":      entry.Notes,
			"reps_done":  entry.RepsDone,
			"sets_done":  entry.SetsDone,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":         uuid.NewString(),
			"date":        entry.Date,
			"exercise_id": entry.ExerciseID,
			"created_at":  now,
		},
	}

	findOptions := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc checklistDocument
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, findOptions).Decode(&doc); err != nil {
		return nil, err
	}

	stored := doc.toDomain()
	return &stored, nil
}

// Delete removes a single entry by id. The date parameter identifies
// the day bucket on the local backend and is not needed here.
func (r *mongoChecklistRepository) Delete(ctx context.Context, _ string, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureChecklistIndexes creates the indexes for the daily_checklists
// collection. The unique (date, exercise_id) index is what makes the
// upsert conflict key hold.
func EnsureChecklistIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "exercise_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
