package listing_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrfixit/internal/listing"
	"mrfixit/internal/seed"
)

func TestPaginate_TwelveProductsEightPerPage(t *testing.T) {
	catalog := seed.Products()

	first := listing.Paginate(catalog, 1, 8)
	second := listing.Paginate(catalog, 2, 8)

	assert.Len(t, first.Items, 8)
	assert.Len(t, second.Items, 4)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 12, first.TotalItems)
	assert.Equal(t, "prod-009", second.Items[0].ID)
	assert.True(t, first.HasNext())
	assert.False(t, second.HasNext())
	assert.True(t, second.HasPrev())
}

func TestPaginate_ClampsOutOfRangePages(t *testing.T) {
	catalog := seed.Products()

	tests := []struct {
		name     string
		page     int
		wantPage int
	}{
		{"zero", 0, 1},
		{"negative", -3, 1},
		{"past the end", 9, 2},
		{"in range", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := listing.Paginate(catalog, tt.page, 8)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.NotEmpty(t, p.Items)
		})
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	p := listing.Paginate([]string{}, 5, 8)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.True(t, p.Empty())
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestPaginate_PageSizeInvariant(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	for _, perPage := range []int{1, 3, 5, 8, 23, 50} {
		p1 := listing.Paginate(items, 1, perPage)
		total := p1.TotalPages
		seen := 0
		for page := 1; page <= total; page++ {
			p := listing.Paginate(items, page, perPage)
			require.LessOrEqual(t, len(p.Items), perPage)
			if page < total {
				assert.Len(t, p.Items, perPage, "perPage=%d page=%d", perPage, page)
			}
			for i, v := range p.Items {
				assert.Equal(t, seen+i, v)
			}
			seen += len(p.Items)
		}
		assert.Equal(t, len(items), seen, "perPage=%d", perPage)
	}
}

func TestPaginate_NonPositivePerPageUsesDefault(t *testing.T) {
	p := listing.Paginate(seed.Products(), 1, 0)

	assert.Equal(t, listing.DefaultPerPage, p.PerPage)
	assert.Len(t, p.Items, listing.DefaultPerPage)
}

func TestPaginate_ReturnsCopy(t *testing.T) {
	items := []int{1, 2, 3}

	p := listing.Paginate(items, 1, 2)
	p.Items[0] = 99

	assert.Equal(t, 1, items[0])
}

func TestTotalPagesAndClamp(t *testing.T) {
	assert.Equal(t, 1, listing.TotalPages(0, 8))
	assert.Equal(t, 1, listing.TotalPages(8, 8))
	assert.Equal(t, 2, listing.TotalPages(9, 8))
	assert.Equal(t, 1, listing.ClampPage(4, 0, 8))
	assert.Equal(t, 3, listing.ClampPage(3, 17, 8))
}

func TestSequencer(t *testing.T) {
	var seq listing.Sequencer

	first := seq.Issue()
	assert.True(t, seq.IsLatest(first))

	second := seq.Issue()
	assert.Greater(t, second, first)
	assert.False(t, seq.IsLatest(first))
	assert.True(t, seq.IsLatest(second))
}

func TestSequencer_ConcurrentIssueIsUnique(t *testing.T) {
	var (
		seq  listing.Sequencer
		mu   sync.Mutex
		seen = map[listing.Token]bool{}
		wg   sync.WaitGroup
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok := seq.Issue()
			mu.Lock()
			seen[tok] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
	assert.True(t, seq.IsLatest(listing.Token(50)))
}
