package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"readinglog.xdoubleu.com/apps/community/internal/models"
)

func TestSharedSince(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	shared := created.Add(time.Hour)

	//nolint:exhaustruct //other fields are optional
	note := models.SharedNote{
		Note: models.Note{ID: "n1", CreatedAt: created, SharedAt: &shared},
	}
	assert.True(t, note.IsShared())
	assert.Equal(t, shared, note.SharedSince())
	assert.Equal(t, "n1", note.Key())

	note.SharedAt = nil
	assert.False(t, note.IsShared())
	assert.Equal(t, created, note.SharedSince())
}
