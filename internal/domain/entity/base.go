// Package entity defines document fields shared by every collection.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base holds the fields common to every stored document.
// It is embedded inline so the fields live at the top level of the document.
type Base struct {
	// ID is the unique identifier for the document, assigned at creation.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// CreateTime is the timestamp when the document was created. Immutable.
	CreateTime time.Time `bson:"create_time" json:"create_time"`

	// UpdateTime is refreshed on every persisted mutation.
	// Invariant: UpdateTime >= CreateTime.
	UpdateTime time.Time `bson:"update_time" json:"update_time"`

	// IsDeleted marks the document as soft-deleted. Soft-deleted documents
	// are never physically removed and are excluded from all queries.
	IsDeleted bool `bson:"is_deleted" json:"is_deleted"`
}

// NewBase assigns a fresh identifier and equal create/update timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:         primitive.NewObjectID(),
		CreateTime: now,
		UpdateTime: now,
	}
}

// Touch refreshes the update timestamp. Call before persisting a mutation.
func (b *Base) Touch() {
	b.UpdateTime = time.Now().UTC()
}
