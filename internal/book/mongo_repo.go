package book

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoRepo runs the query library against a MongoDB collection.
type MongoRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoRepo(coll *mongo.Collection, timeout time.Duration) *MongoRepo {
	return &MongoRepo{coll: coll, timeout: timeout}
}

func (r *MongoRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// document is the stored shape of a book. _id is kept raw because documents inserted
// outside this module may carry ObjectIDs or strings.
type document struct {
	ID            bson.RawValue `bson:"_id"`
	Title         string        `bson:"title"`
	Author        string        `bson:"author"`
	PublishedYear int           `bson:"published_year"`
	Price         float64       `bson:"price"`
	Genre         string        `bson:"genre"`
	InStock       bool          `bson:"in_stock"`
}

func (d document) book() Book {
	return Book{
		ID:            idString(d.ID),
		Title:         d.Title,
		Author:        d.Author,
		PublishedYear: d.PublishedYear,
		Price:         d.Price,
		Genre:         d.Genre,
		InStock:       d.InStock,
	}
}

func idString(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	if v.Type == 0 {
		return ""
	}
	return v.String()
}

func toDocument(b Book) bson.D {
	return bson.D{
		{Key: FieldTitle, Value: b.Title},
		{Key: FieldAuthor, Value: b.Author},
		{Key: FieldPublishedYear, Value: b.PublishedYear},
		{Key: FieldPrice, Value: b.Price},
		{Key: FieldGenre, Value: b.Genre},
		{Key: FieldInStock, Value: b.InStock},
	}
}

func (r *MongoRepo) Find(ctx context.Context, q Query) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(timeoutCtx, mongoFilter(q.Filter), mongoFindOptions(q))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", q.Name, err)
	}
	var docs []document
	if err := cur.All(timeoutCtx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", q.Name, err)
	}

	out := make([]Book, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.book())
	}
	return out, nil
}

func (r *MongoRepo) UpdatePriceByTitle(ctx context.Context, title string, price float64) (UpdateResult, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(timeoutCtx,
		bson.D{{Key: FieldTitle, Value: title}},
		bson.D{{Key: "$set", Value: bson.D{{Key: FieldPrice, Value: price}}}},
	)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update price: %w", err)
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (r *MongoRepo) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(timeoutCtx, bson.D{{Key: FieldTitle, Value: title}})
	if err != nil {
		return 0, fmt.Errorf("delete book: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MongoRepo) AveragePriceByGenre(ctx context.Context) ([]GenreAverage, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Aggregate(timeoutCtx, averagePriceByGenrePipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate average price: %w", err)
	}
	out := []GenreAverage{}
	if err := cur.All(timeoutCtx, &out); err != nil {
		return nil, fmt.Errorf("decode average price: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) CountByDecade(ctx context.Context) ([]DecadeCount, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Aggregate(timeoutCtx, countByDecadePipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate decades: %w", err)
	}
	out := []DecadeCount{}
	if err := cur.All(timeoutCtx, &out); err != nil {
		return nil, fmt.Errorf("decode decades: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) CreateIndex(ctx context.Context, spec IndexSpec) (string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	name, err := r.coll.Indexes().CreateOne(timeoutCtx, mongo.IndexModel{Keys: mongoIndexKeys(spec)})
	if err != nil {
		return "", fmt.Errorf("create index %s: %w", spec.Name(), err)
	}
	return name, nil
}

func (r *MongoRepo) Explain(ctx context.Context, q Query) (Plan, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := r.coll.Database().RunCommand(timeoutCtx, mongoExplainCommand(r.coll.Name(), q)).Raw()
	if err != nil {
		return nil, fmt.Errorf("explain %s: %w", q.Name, err)
	}
	ext, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, fmt.Errorf("explain %s: %w", q.Name, err)
	}
	var plan Plan
	if err := json.Unmarshal(ext, &plan); err != nil {
		return nil, fmt.Errorf("explain %s: %w", q.Name, err)
	}
	return plan, nil
}

func (r *MongoRepo) InsertMany(ctx context.Context, books []Book) (int, error) {
	if len(books) == 0 {
		return 0, nil
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	docs := make([]bson.D, 0, len(books))
	for _, b := range books {
		docs = append(docs, toDocument(b))
	}
	res, err := r.coll.InsertMany(timeoutCtx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert books: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (r *MongoRepo) DeleteAll(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.DeleteMany(timeoutCtx, bson.D{}); err != nil {
		return fmt.Errorf("delete all books: %w", err)
	}
	return nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.coll.Database().Client().Ping(timeoutCtx, nil)
}
