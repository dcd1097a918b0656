package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestWatchQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         WatchQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: WatchQuery{},
			wantDataHas: []string{
				"FROM watches",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM watches",
		},
		{
			name:         "region filter",
			query:        WatchQuery{RegionID: ptr(int64(204))},
			wantDataHas:  []string{"WHERE region_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM watches WHERE region_id = $1",
			wantArgs:     []any{int64(204)},
		},
		{
			name: "multiple filters with correct parameter numbering",
			query: WatchQuery{
				RegionID: ptr(int64(204)),
				Active:   ptr(true),
				AutoBook: ptr(false),
				Account:  ptr("family"),
			},
			wantDataHas: []string{
				"region_id = $1",
				"active = $2",
				"auto_book = $3",
				"account = $4",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM watches WHERE region_id = $1 AND active = $2 AND auto_book = $3 AND account = $4",
			wantArgs:     []any{int64(204), true, false, "family"},
		},
		{
			name:        "order by start date",
			query:       WatchQuery{OrderBy: "start_date"},
			wantDataHas: []string{"ORDER BY start_date ASC NULLS LAST"},
		},
		{
			name:          "invalid order by falls back to default",
			query:         WatchQuery{OrderBy: "DROP TABLE watches; --"},
			wantDataHas:   []string{"ORDER BY created_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name:        "custom limit and offset",
			query:       WatchQuery{Limit: 25, Offset: 100},
			wantDataHas: []string{"LIMIT 25", "OFFSET 100"},
		},
		{
			name:        "limit exceeding max is capped",
			query:       WatchQuery{Limit: 10000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "negative offset is clamped",
			query:       WatchQuery{Offset: -5},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestMedicineQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        MedicineQuery
		wantCountSQL string
		wantArgs     []any
		wantDataHas  []string
	}{
		{
			name:         "empty query uses defaults",
			query:        MedicineQuery{},
			wantDataHas:  []string{"FROM medicine_searches", "ORDER BY created_at DESC", "LIMIT 50"},
			wantCountSQL: "SELECT COUNT(*) FROM medicine_searches",
		},
		{
			name:         "name substring filter",
			query:        MedicineQuery{Name: ptr("apap")},
			wantDataHas:  []string{"WHERE name ILIKE '%' || $1 || '%'"},
			wantCountSQL: "SELECT COUNT(*) FROM medicine_searches WHERE name ILIKE '%' || $1 || '%'",
			wantArgs:     []any{"apap"},
		},
		{
			name:         "location and active",
			query:        MedicineQuery{Location: ptr("Gdańsk"), Active: ptr(true)},
			wantCountSQL: "SELECT COUNT(*) FROM medicine_searches WHERE location = $1 AND active = $2",
			wantArgs:     []any{"Gdańsk", true},
		},
		{
			name:        "order by last search",
			query:       MedicineQuery{OrderBy: "last_search_at"},
			wantDataHas: []string{"ORDER BY last_search_at DESC NULLS LAST"},
		},
		{
			name:        "watch-only order falls back to default",
			query:       MedicineQuery{OrderBy: "start_date"},
			wantDataHas: []string{"ORDER BY created_at DESC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
