package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated   = "created_at"
	orderByStartDate = "start_date"
	orderByName      = "name"
	orderBySearched  = "last_search_at"
)

// validWatchOrderBy maps allowed WatchQuery.OrderBy values to SQL expressions.
var validWatchOrderBy = map[string]string{
	orderByCreated:   "created_at DESC",
	orderByStartDate: "start_date ASC NULLS LAST",
}

// validMedicineOrderBy maps allowed MedicineQuery.OrderBy values to SQL expressions.
var validMedicineOrderBy = map[string]string{
	orderByCreated:  "created_at DESC",
	orderByName:     "name ASC",
	orderBySearched: "last_search_at DESC NULLS LAST",
}

const defaultOrderBy = "created_at DESC"

// WatchQuery defines optional filters for watch listings.
type WatchQuery struct {
	RegionID *int64
	Active   *bool
	AutoBook *bool
	Account  *string
	Limit    int // default 50
	Offset   int
	OrderBy  string // "created_at", "start_date"
}

// MedicineQuery defines optional filters for medicine search listings.
type MedicineQuery struct {
	Name     *string // case-insensitive substring
	Location *string
	Active   *bool
	Limit    int // default 50
	Offset   int
	OrderBy  string // "created_at", "name", "last_search_at"
}

// whereBuilder accumulates positional conditions.
type whereBuilder struct {
	conditions []string
	args       []any
}

func (b *whereBuilder) add(expr string, arg any) {
	b.args = append(b.args, arg)
	b.conditions = append(b.conditions, fmt.Sprintf(expr, len(b.args)))
}

func (b *whereBuilder) clause() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conditions, " AND ")
}

// ToSQL builds the data and count queries for a watch listing together with
// their positional parameters.
func (q *WatchQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var b whereBuilder

	if q.RegionID != nil {
		b.add("region_id = $%d", *q.RegionID)
	}
	if q.Active != nil {
		b.add("active = $%d", *q.Active)
	}
	if q.AutoBook != nil {
		b.add("auto_book = $%d", *q.AutoBook)
	}
	if q.Account != nil {
		b.add("account = $%d", *q.Account)
	}

	where := b.clause()
	dataSQL = fmt.Sprintf("%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseWatchesSelect, where, orderClause(q.OrderBy, validWatchOrderBy),
		clampLimit(q.Limit), max(q.Offset, 0),
	)
	return dataSQL, countWatchesSelect + where, b.args
}

// ToSQL builds the data and count queries for a medicine search listing
// together with their positional parameters.
func (q *MedicineQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var b whereBuilder

	if q.Name != nil {
		b.add("name ILIKE '%%' || $%d || '%%'", *q.Name)
	}
	if q.Location != nil {
		b.add("location = $%d", *q.Location)
	}
	if q.Active != nil {
		b.add("active = $%d", *q.Active)
	}

	where := b.clause()
	dataSQL = fmt.Sprintf("%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseMedicineSelect, where, orderClause(q.OrderBy, validMedicineOrderBy),
		clampLimit(q.Limit), max(q.Offset, 0),
	)
	return dataSQL, countMedicineSelect + where, b.args
}

func orderClause(orderBy string, valid map[string]string) string {
	if col, ok := valid[orderBy]; ok {
		return col
	}
	return defaultOrderBy
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}
