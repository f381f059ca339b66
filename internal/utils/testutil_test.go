package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/models"
)

func TestSetupTestDBSharesOneConnection(t *testing.T) {
	db := SetupTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory sqlite gives every pool connection its own database, so the
	// pool must stay at one connection for the schema to be visible.
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, db.Create(&models.ContactForm{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Message: "Hello",
	}).Error)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var n int64
			assert.NoError(t, db.Model(&models.ContactForm{}).Count(&n).Error)
			assert.Equal(t, int64(1), n)
		}()
	}
	wg.Wait()
}
