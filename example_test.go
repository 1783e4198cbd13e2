package object_test

import (
	"context"
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/vearutop/object"
)

func ExampleNewManager() {
	// Create manager instance.
	m := object.NewManager(object.ManagerConfig{
		Config: object.Config{
			Name:   "dogs",
			Logger: ctxd.NoOpLogger{},
			Stats:  &stats.TrackerMock{},
		},
		TimeLimit: 13 * time.Minute,
	})

	// Use context if available.
	ctx := context.TODO()

	// Drop stale cache before access.
	m.Flush(ctx, false)

	// Write value to cache.
	m.Put(ctx, "my-key", []int{1, 2, 3})

	// Read value from cache.
	val, _ := m.Get(ctx, "my-key")
	fmt.Printf("%v", val)

	// Output:
	// [1 2 3]
}

func ExampleNewAttributed() {
	o := object.NewAttributed(object.Config{Name: "Dog"})
	o.Set("name", "Rex")
	o.Set("age", 3)

	fmt.Println(o)
	fmt.Println(o.ToMap("age"))

	// Output:
	// Dog(name=Rex, age=3)
	// map[name:Rex]
}
