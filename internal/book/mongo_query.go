package book

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func mongoFilter(f Filter) bson.D {
	filter := bson.D{}
	if f.InStock != nil {
		filter = append(filter, bson.E{Key: FieldInStock, Value: *f.InStock})
	}
	if f.PublishedAfter != nil {
		filter = append(filter, bson.E{Key: FieldPublishedYear, Value: bson.D{{Key: "$gt", Value: *f.PublishedAfter}}})
	}
	if f.Author != "" {
		filter = append(filter, bson.E{Key: FieldAuthor, Value: f.Author})
	}
	if f.Title != "" {
		filter = append(filter, bson.E{Key: FieldTitle, Value: f.Title})
	}
	return filter
}

func mongoProjection(p Projection) bson.D {
	if p != ProjectSummary {
		return nil
	}
	return bson.D{
		{Key: FieldTitle, Value: 1},
		{Key: FieldAuthor, Value: 1},
		{Key: FieldPrice, Value: 1},
		{Key: "_id", Value: 0},
	}
}

// mongoSort breaks price ties on _id so skip/limit pages are stable.
func mongoSort(o Order, paged bool) bson.D {
	var sort bson.D
	switch o {
	case PriceAsc:
		sort = bson.D{{Key: FieldPrice, Value: 1}}
	case PriceDesc:
		sort = bson.D{{Key: FieldPrice, Value: -1}}
	default:
		return nil
	}
	if paged {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}
	return sort
}

func mongoFindOptions(q Query) *options.FindOptionsBuilder {
	opts := options.Find()
	if p := mongoProjection(q.Projection); p != nil {
		opts.SetProjection(p)
	}
	if s := mongoSort(q.Order, q.Skip > 0 || q.Limit > 0); s != nil {
		opts.SetSort(s)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}

// mongoExplainCommand builds the explain command equivalent to find(...).explain("executionStats").
func mongoExplainCommand(collection string, q Query) bson.D {
	find := bson.D{
		{Key: "find", Value: collection},
		{Key: "filter", Value: mongoFilter(q.Filter)},
	}
	if p := mongoProjection(q.Projection); p != nil {
		find = append(find, bson.E{Key: "projection", Value: p})
	}
	if s := mongoSort(q.Order, q.Skip > 0 || q.Limit > 0); s != nil {
		find = append(find, bson.E{Key: "sort", Value: s})
	}
	if q.Skip > 0 {
		find = append(find, bson.E{Key: "skip", Value: q.Skip})
	}
	if q.Limit > 0 {
		find = append(find, bson.E{Key: "limit", Value: q.Limit})
	}
	return bson.D{
		{Key: "explain", Value: find},
		{Key: "verbosity", Value: "executionStats"},
	}
}

func averagePriceByGenrePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + FieldGenre},
			{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$" + FieldPrice}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "averagePrice", Value: -1}}}},
	}
}

func countByDecadePipeline() mongo.Pipeline {
	decade := bson.D{{Key: "$multiply", Value: bson.A{
		bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$" + FieldPublishedYear, 10}}}}},
		10,
	}}}
	return mongo.Pipeline{
		{{Key: "$project", Value: bson.D{{Key: "decade", Value: decade}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$decade"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

func mongoIndexKeys(spec IndexSpec) bson.D {
	keys := make(bson.D, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		keys = append(keys, bson.E{Key: f.Field, Value: f.Direction})
	}
	return keys
}
