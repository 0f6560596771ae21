package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategoryProviderHealth, "Provider unreachable", "connection refused", "linkup")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryProviderHealth, warnings[0].Category)
	assert.Equal(t, "Provider unreachable", warnings[0].Message)
	assert.Equal(t, "connection refused", warnings[0].Details)
	assert.Equal(t, "linkup", warnings[0].Provider)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearByProvider(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryProviderHealth, "Provider unreachable", "", "linkup")
	svc.AddWarning(WarningCategoryProviderHealth, "Provider unreachable", "", "tavily")

	assert.Len(t, svc.GetWarnings(), 2)

	cleared := svc.ClearByProvider(WarningCategoryProviderHealth, "linkup")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "tavily", svc.GetWarnings()[0].Provider)

	cleared = svc.ClearByProvider(WarningCategoryProviderHealth, "nonexistent")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryProviderHealth, "First error", "err1", "linkup")
	svc.AddWarning(WarningCategoryProviderHealth, "Second error", "err2", "linkup")

	// Same category+provider replaces rather than accumulates
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second error", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ThreadSafety(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddWarning(WarningCategoryEventListener, "msg", "", "")
		}()
	}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}

	wg.Wait()
	assert.NotNil(t, svc.GetWarnings())
}
