package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisconnectWithoutConnect(t *testing.T) {
	assert.NoError(t, Disconnect())
	// A second call on an already-closed handle is still a no-op.
	assert.NoError(t, Disconnect())
}
