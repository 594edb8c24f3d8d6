package benchmarks_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rshade/pokecatch/internal/catalog"
	"github.com/rshade/pokecatch/internal/catalog/catalogtest"
	"github.com/rshade/pokecatch/internal/fanout"
	"github.com/rshade/pokecatch/internal/tui"
	"github.com/rshade/pokecatch/internal/view"
)

// BenchmarkFilter_FullCatalog benchmarks one keystroke's filter over a
// catalog-sized roster.
func BenchmarkFilter_FullCatalog(b *testing.B) {
	b.ReportAllocs()
	records := catalogtest.Roster(1300)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = view.Filter(records, "MON-1")
	}
}

// BenchmarkFanout_Join benchmarks the ordered join without I/O.
func BenchmarkFanout_Join(b *testing.B) {
	b.ReportAllocs()
	items := make([]int, 500)
	for i := range items {
		items[i] = i
	}
	task := func(_ context.Context, _ int, item int) (string, error) {
		return fmt.Sprintf("item-%d", item), nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fanout.Map(context.Background(), items, task); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClient_Fetch benchmarks a full list-then-detail cycle against a
// local test server.
func BenchmarkClient_Fetch(b *testing.B) {
	b.ReportAllocs()
	srv := catalogtest.NewServer(catalogtest.Roster(50))
	defer srv.Close()
	client := catalog.NewClient(catalog.Options{BaseURL: srv.BaseURL()})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.Fetch(context.Background(), 50, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRenderGrid benchmarks rendering a page of cards.
func BenchmarkRenderGrid(b *testing.B) {
	b.ReportAllocs()
	records := catalogtest.Roster(30)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tui.RenderGrid(records, 120)
	}
}
