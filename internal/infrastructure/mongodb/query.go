package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QueryBuilder accumulates typed predicate clauses and combines them with a
// single conjunction on Build. Construction is pure; nothing here touches
// the connection.
type QueryBuilder struct {
	clauses []bson.M
}

// NewQueryBuilder returns an empty builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// ExcludeDeleted requires the document not to be soft-deleted.
func (b *QueryBuilder) ExcludeDeleted() *QueryBuilder {
	b.clauses = append(b.clauses, bson.M{"is_deleted": false})
	return b
}

// Contains requires the field to contain value as a case-insensitive
// substring. Regex metacharacters in value are quoted, so the match is a
// plain substring match rather than a pattern match.
func (b *QueryBuilder) Contains(field, value string) *QueryBuilder {
	b.clauses = append(b.clauses, bson.M{field: primitive.Regex{
		Pattern: regexp.QuoteMeta(value),
		Options: "i",
	}})
	return b
}

// Eq requires an exact match on the field.
func (b *QueryBuilder) Eq(field string, value interface{}) *QueryBuilder {
	b.clauses = append(b.clauses, bson.M{field: value})
	return b
}

// IDEq requires an exact match on the document id.
func (b *QueryBuilder) IDEq(id primitive.ObjectID) *QueryBuilder {
	b.clauses = append(b.clauses, bson.M{"_id": id})
	return b
}

// ContainsAll requires the array field to contain every given value.
func (b *QueryBuilder) ContainsAll(field string, values []string) *QueryBuilder {
	b.clauses = append(b.clauses, bson.M{field: bson.M{"$all": values}})
	return b
}

// AnyIn requires the array field to contain at least one of the given values.
func (b *QueryBuilder) AnyIn(field string, values []string) *QueryBuilder {
	b.clauses = append(b.clauses, bson.M{field: bson.M{"$in": values}})
	return b
}

// NoneIn requires the array field to contain none of the given values.
func (b *QueryBuilder) NoneIn(field string, values []string) *QueryBuilder {
	b.clauses = append(b.clauses, bson.M{field: bson.M{"$nin": values}})
	return b
}

// Build combines the accumulated clauses into a single $and filter.
// An empty builder produces an empty filter (match everything).
func (b *QueryBuilder) Build() bson.M {
	if len(b.clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": b.clauses}
}

// IsValidID reports whether s is a syntactically valid document id.
// It is used to branch between identifier lookup and text search and is
// independent of any store connection.
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}

// FindPage composes sort, skip and limit options for a bounded query.
// sortField empty means natural order, which the store keeps unspecified
// but stable within a single query. A negative skip is floored at zero to
// keep the driver call legal; callers are expected to validate upstream.
func FindPage(sortField string, reverse bool, skip, limit int64) *options.FindOptions {
	opts := options.Find()
	if sortField != "" {
		direction := 1
		if reverse {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: sortField, Value: direction}})
	}
	if skip < 0 {
		skip = 0
	}
	opts.SetSkip(skip)
	opts.SetLimit(limit)
	return opts
}
