package list_appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

	req, err := ToServiceRequest(5, "", "", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), req.From)
	assert.Equal(t, req.From, req.To)
	assert.Nil(t, req.Status)

	req, err = ToServiceRequest(5, "2025-03-20", "", "", "open", now)
	require.NoError(t, err)
	assert.Equal(t, 20, req.From.Day())
	require.NotNil(t, req.Status)
	assert.Equal(t, "open", *req.Status)

	req, err = ToServiceRequest(5, "", "2025-03-01", "2025-03-31", "", now)
	require.NoError(t, err)
	assert.Equal(t, 31, req.To.Day())

	_, err = ToServiceRequest(5, "", "2025-03-01", "", "", now)
	assert.Error(t, err)

	_, err = ToServiceRequest(5, "20/03/2025", "", "", "", now)
	assert.Error(t, err)
}
