package repository

import (
	"context"
	"fmt"
	"time"

	"travelledger-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocumentStore implements the DocumentStore interface on MongoDB.
// Collections are addressed by name; documents get ObjectID hex ids and
// createdAt/updatedAt stamps on write.
type MongoDocumentStore struct {
	db  *mongo.Database
	now func() time.Time
}

// NewMongoDocumentStore creates a new MongoDB-backed document store.
func NewMongoDocumentStore(db *mongo.Database) repository.DocumentStore {
	return &MongoDocumentStore{
		db:  db,
		now: time.Now,
	}
}

// Create inserts a record with fresh createdAt/updatedAt stamps and returns
// the id assigned by the store. Any id or timestamps on the record itself
// are discarded.
func (s *MongoDocumentStore) Create(ctx context.Context, collection string, record interface{}) (string, error) {
	doc, err := toDocument(record)
	if err != nil {
		return "", fmt.Errorf("encode %s record: %w", collection, err)
	}

	now := s.now()
	delete(doc, "_id")
	doc["createdAt"] = now
	doc["updatedAt"] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Update applies patch to the document with the given id, restamping
// updatedAt. The id and createdAt fields are immutable and stripped from
// the patch.
func (s *MongoDocumentStore) Update(ctx context.Context, collection, id string, patch interface{}) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	doc, err := toDocument(patch)
	if err != nil {
		return fmt.Errorf("encode %s patch: %w", collection, err)
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	doc["updatedAt"] = s.now()

	result, err := s.db.Collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": doc},
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update %s/%s: %w", collection, id, repository.ErrNotFound)
	}
	return nil
}

// Delete removes the document with the given id.
func (s *MongoDocumentStore) Delete(ctx context.Context, collection, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("delete %s/%s: %w", collection, id, repository.ErrNotFound)
	}
	return nil
}

// GetAll decodes every document in the collection into out.
func (s *MongoDocumentStore) GetAll(ctx context.Context, collection string, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("find all in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// GetByID decodes a single document into out.
func (s *MongoDocumentStore) GetByID(ctx context.Context, collection, id string, out interface{}) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("get %s/%s: %w", collection, id, repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return nil
}

// GetByDateRange decodes documents whose dateField lies within [start, end],
// most recent first.
func (s *MongoDocumentStore) GetByDateRange(ctx context.Context, collection, dateField string, start, end time.Time, out interface{}) error {
	filter := bson.M{
		dateField: bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: dateField, Value: -1}})

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find %s by %s range: %w", collection, dateField, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid document id %q: %w", id, repository.ErrNotFound)
	}
	return oid, nil
}

func toDocument(record interface{}) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
