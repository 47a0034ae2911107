package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentRegistry_Register(t *testing.T) {
	r := NewDepartmentRegistry([]string{"Kitchen", "Bar"})

	assert.True(t, r.Register(1, "Kitchen"))
	assert.False(t, r.Register(1, "Kitchen"), "re-registering the same chat is not an addition")
	assert.True(t, r.Register(1, "Bar"), "a chat may belong to several departments")
	assert.False(t, r.Register(1, "Laundry"), "unknown department is a no-op")

	assert.Equal(t, []int64{1}, r.Members("Kitchen"))
	assert.Equal(t, []string{"Kitchen", "Bar"}, r.DepartmentsOf(1))
	assert.Empty(t, r.DepartmentsOf(42))
}

func TestDepartmentRegistry_NamesPreserveConfigOrder(t *testing.T) {
	names := []string{"Zulu", "Alpha", "Mike"}
	r := NewDepartmentRegistry(names)
	assert.Equal(t, names, r.Names())
	assert.True(t, r.Valid("Alpha"))
	assert.False(t, r.Valid("alpha"))
}

func TestDepartmentRegistry_ConcurrentAppend(t *testing.T) {
	r := NewDepartmentRegistry([]string{"Kitchen"})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			r.Register(id, "Kitchen")
		}(int64(i))
	}
	wg.Wait()

	assert.Len(t, r.Members("Kitchen"), 100)
}

func TestLoadDepartmentRegistry_MergesStoredAssignments(t *testing.T) {
	repo := &memDepartments{stored: map[string][]int64{
		"Kitchen": {10, 11},
		"Retired": {99}, // no longer configured, dropped
	}}
	r, err := LoadDepartmentRegistry(context.Background(), []string{"Kitchen", "Bar"}, repo)
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 11}, r.Members("Kitchen"))
	assert.Empty(t, r.Members("Bar"))
	assert.Empty(t, r.Members("Retired"))
	assert.False(t, r.Valid("Retired"))
}
