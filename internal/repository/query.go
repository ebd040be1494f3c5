package repository

import (
	"strconv"
	"strings"
)

// BodyFilter restricts a catalog listing. The zero value matches everything.
// It is built deterministically from request parameters and translated to
// SQL only here, at the storage boundary.
type BodyFilter struct {
	// Type restricts to an exact enumeration match when non-empty.
	Type string
	// Search restricts to a full-text match over name and description
	// when non-empty. Matching is word-based, not substring.
	Search string
}

// whereClause renders the filter as a SQL fragment with placeholders
// starting at $startIdx. Returns an empty string when nothing is set.
func (f BodyFilter) whereClause(startIdx int) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.Type != "" {
		conds = append(conds, "type = $"+strconv.Itoa(startIdx+len(args)))
		args = append(args, f.Type)
	}
	if f.Search != "" {
		conds = append(conds,
			"to_tsvector('english', name || ' ' || description) @@ plainto_tsquery('english', $"+
				strconv.Itoa(startIdx+len(args))+")")
		args = append(args, f.Search)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// SortSpec is a validated sort order over a whitelisted column.
type SortSpec struct {
	Column string
	Desc   bool
}

// sortableColumns maps exposed JSON field names to table columns. Sorting is
// restricted to this set; anything else falls back to the default order.
var sortableColumns = map[string]string{
	"name":          "name",
	"type":          "type",
	"discoveredBy":  "discovered_by",
	"discoveryDate": "discovery_date",
	"createdAt":     "created_at",
}

// DefaultSort is name ascending, the API default order.
var DefaultSort = SortSpec{Column: "name"}

// ParseSort interprets a sort request parameter. A leading '-' means
// descending. Unknown or empty fields yield DefaultSort.
func ParseSort(raw string) SortSpec {
	raw = strings.TrimSpace(raw)
	desc := false
	if strings.HasPrefix(raw, "-") {
		desc = true
		raw = raw[1:]
	}

	col, ok := sortableColumns[raw]
	if !ok {
		return DefaultSort
	}
	return SortSpec{Column: col, Desc: desc}
}

func (s SortSpec) orderClause() string {
	dir := " ASC"
	if s.Desc {
		dir = " DESC"
	}
	return " ORDER BY " + s.Column + dir
}

// ListQuery is the full read contract for a catalog listing.
type ListQuery struct {
	Filter BodyFilter
	Sort   SortSpec
	Limit  int
	Offset int
}
