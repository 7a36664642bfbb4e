package repositories_test

import (
	"sync"
	"testing"

	"poshstore/internal/models"
	"poshstore/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMockCounterNextValueConcurrent(t *testing.T) {
	repo := repositories.NewMockCounterRepository()

	const workers = 50
	const drawsPerWorker = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[int64]bool)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < drawsPerWorker; j++ {
				value, err := repo.NextValue("orderId")
				assert.NoError(t, err)

				mu.Lock()
				assert.False(t, seen[value], "value %d drawn twice", value)
				seen[value] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*drawsPerWorker)
	next, err := repo.NextValue("orderId")
	assert.NoError(t, err)
	assert.Equal(t, int64(workers*drawsPerWorker+1), next)
}

func TestMockCounterIndependentSequences(t *testing.T) {
	repo := repositories.NewMockCounterRepository()

	first, _ := repo.NextValue("orderId")
	second, _ := repo.NextValue("invoiceId")
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(1), second)
}

func TestGORMCounterNextValue(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:counter_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Counter{}))

	repo := repositories.NewGORMCounterRepository(db)

	for expected := int64(1); expected <= 5; expected++ {
		value, err := repo.NextValue("orderId")
		assert.NoError(t, err)
		assert.Equal(t, expected, value)
	}

	// A different name starts its own sequence.
	value, err := repo.NextValue("invoiceId")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), value)
}
