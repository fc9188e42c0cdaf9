package microshard_test

import (
	"fmt"
	"time"

	microshard "github.com/dilipvamsi/microshard-uuid"
	"github.com/dilipvamsi/microshard-uuid/pkg/entropy"
)

func ExampleFromMicros() {
	id, err := microshard.FromMicros(1_714_566_896_789_012, 42)
	if err != nil {
		panic(err)
	}

	fmt.Println(id.ShardID())
	fmt.Println(id.TimestampMicros())
	fmt.Println(id.ISOTime())
	// Output:
	// 42
	// 1714566896789012
	// 2024-05-01T12:34:56.789012Z
}

func ExampleParse() {
	id, err := microshard.Parse("185d8edb-4e98-8500-8000-02a2d3fe2c5a")
	if err != nil {
		panic(err)
	}

	fmt.Printf("shard %d, created %s\n", id.ShardID(), id.ISOTime())
	// Output:
	// shard 42, created 2024-05-01T12:34:56.789012Z
}

func ExampleNewGenerator() {
	// A deterministic source and a fixed clock make output reproducible;
	// production code omits both options.
	gen, err := microshard.NewGenerator(7,
		microshard.WithSource(entropy.NewSeeded(1)),
		microshard.WithClock(func() time.Time {
			return time.Date(2024, 5, 1, 12, 34, 56, 789_012_000, time.UTC)
		}),
	)
	if err != nil {
		panic(err)
	}

	id, err := gen.New()
	if err != nil {
		panic(err)
	}

	fmt.Println(id.ShardID(), id.ISOTime())
	// Output:
	// 7 2024-05-01T12:34:56.789012Z
}

func ExampleUUID_Compare() {
	older, _ := microshard.FromISO("2023-01-01T00:00:00Z", 1)
	newer, _ := microshard.FromISO("2024-01-01T00:00:00Z", 1)

	fmt.Println(older.Before(newer))
	fmt.Println(newer.Compare(older))
	// Output:
	// true
	// 1
}
