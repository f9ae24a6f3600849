package repository

import (
	"testing"

	"github.com/lib/pq"
	"github.com/manantri/campusfest/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRegistrationConflictFullEvent(t *testing.T) {
	event := &model.Event{
		Capacity:          2,
		TotalParticipants: 2,
		RegisteredUsers:   pq.StringArray{"user_1", "user_2"},
	}

	assert.ErrorIs(t, classifyRegistrationConflict(event, "user_3"), ErrEventFull)
}

func TestClassifyRegistrationConflictFullEventWinsOverDuplicate(t *testing.T) {
	event := &model.Event{
		Capacity:          2,
		TotalParticipants: 2,
		RegisteredUsers:   pq.StringArray{"user_1", "user_2"},
	}

	// A registrant retrying against a full event hears "full", not "already
	// registered".
	assert.ErrorIs(t, classifyRegistrationConflict(event, "user_1"), ErrEventFull)
}

func TestClassifyRegistrationConflictDuplicate(t *testing.T) {
	event := &model.Event{
		Capacity:          10,
		TotalParticipants: 2,
		RegisteredUsers:   pq.StringArray{"user_1", "user_2"},
	}

	assert.ErrorIs(t, classifyRegistrationConflict(event, "user_1"), ErrAlreadyRegistered)
}
