package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBase(t *testing.T) {
	b := NewBase()

	assert.False(t, b.ID.IsZero())
	assert.True(t, b.CreateTime.Equal(b.UpdateTime))
	assert.False(t, b.IsDeleted)

	// Two documents never share an identifier.
	assert.NotEqual(t, b.ID, NewBase().ID)
}

func TestBase_Touch(t *testing.T) {
	b := NewBase()
	b.CreateTime = b.CreateTime.Add(-time.Minute)
	b.UpdateTime = b.CreateTime
	created := b.CreateTime

	b.Touch()

	assert.True(t, b.UpdateTime.After(b.CreateTime))
	assert.True(t, b.CreateTime.Equal(created))
}
