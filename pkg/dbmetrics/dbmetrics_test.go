package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT id FROM bookings WHERE vendor_id = $1"))
	assert.Equal(t, "insert", operationOf("\n\tINSERT INTO x VALUES ($1)"))
	assert.Equal(t, "unknown", operationOf("   "))
}
