// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scene_backend/internal/feature/users/domain/entity"
	"scene_backend/internal/feature/users/usecase"
	"scene_backend/internal/infrastructure/mongodb"
)

// usersCollection is the collection users are stored in.
const usersCollection = "users"

// userMongo is the MongoDB implementation of the UserRepository interface.
type userMongo struct {
	db *mongodb.Adapter
}

// Compile-time check that userMongo implements UserRepository.
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo creates a new userMongo backed by the given adapter.
func NewUserMongo(db *mongodb.Adapter) *userMongo {
	return &userMongo{db: db}
}

// Create inserts the user document.
func (r *userMongo) Create(ctx context.Context, u *entity.User) error {
	opCtx, cancel := r.db.WithOperationTimeout(ctx)
	defer cancel()
	_, err := r.db.Collection(usersCollection).InsertOne(opCtx, u)
	return err
}

// FindByID retrieves a user by id regardless of its soft-delete state.
// A malformed id and a missing document both map to usecase.ErrUserNotFound.
func (r *userMongo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrUserNotFound
	}

	opCtx, cancel := r.db.WithOperationTimeout(ctx)
	defer cancel()

	var u entity.User
	if err := r.db.Collection(usersCollection).FindOne(opCtx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns the non-deleted users matching the filter, in natural order.
func (r *userMongo) List(ctx context.Context, f usecase.ListUsersFilter) ([]entity.User, error) {
	opCtx, cancel := r.db.WithOperationTimeout(ctx)
	defer cancel()

	opts := mongodb.FindPage("", false, f.Skip, f.Limit)
	cur, err := r.db.Collection(usersCollection).Find(opCtx, buildUserListQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(opCtx)

	users := make([]entity.User, 0)
	if err := cur.All(opCtx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update replaces the stored document with the entity's current state.
func (r *userMongo) Update(ctx context.Context, u *entity.User) error {
	opCtx, cancel := r.db.WithOperationTimeout(ctx)
	defer cancel()

	res, err := r.db.Collection(usersCollection).ReplaceOne(opCtx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// buildUserListQuery composes the list predicate: always excludes
// soft-deleted users, then ANDs a case-insensitive substring clause for
// each provided filter field.
func buildUserListQuery(f usecase.ListUsersFilter) bson.M {
	qb := mongodb.NewQueryBuilder().ExcludeDeleted()
	if f.Username != "" {
		qb.Contains("username", f.Username)
	}
	if f.Email != "" {
		qb.Contains("email", f.Email)
	}
	if f.Phone != "" {
		qb.Contains("phone", f.Phone)
	}
	return qb.Build()
}
