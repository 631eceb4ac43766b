package cms

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Filter merepresentasikan filter tree ala Directus:
// map[field]map[operator]value, plus node logika _and/_or.
// Contoh hasil serialisasi: {"status":{"_eq":"open"},"is_deleted":{"_neq":true}}
type Filter map[string]interface{}

// Eq membuat filter kesetaraan field == value.
func Eq(field string, value interface{}) Filter {
	return Filter{field: map[string]interface{}{"_eq": value}}
}

// Neq membuat filter field != value.
func Neq(field string, value interface{}) Filter {
	return Filter{field: map[string]interface{}{"_neq": value}}
}

// In membuat filter field termasuk salah satu dari values.
func In(field string, values interface{}) Filter {
	return Filter{field: map[string]interface{}{"_in": values}}
}

// Gte membuat filter field >= value.
func Gte(field string, value interface{}) Filter {
	return Filter{field: map[string]interface{}{"_gte": value}}
}

// Lte membuat filter field <= value.
func Lte(field string, value interface{}) Filter {
	return Filter{field: map[string]interface{}{"_lte": value}}
}

// IContains membuat filter substring case-insensitive.
func IContains(field string, value string) Filter {
	return Filter{field: map[string]interface{}{"_icontains": value}}
}

// And menggabungkan beberapa filter dengan logika AND.
func And(filters ...Filter) Filter {
	return Filter{"_and": toList(filters)}
}

// Or menggabungkan beberapa filter dengan logika OR.
func Or(filters ...Filter) Filter {
	return Filter{"_or": toList(filters)}
}

func toList(filters []Filter) []Filter {
	out := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if len(f) > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Query mendeskripsikan 1 request list/item ke CMS: koleksi, filter, proyeksi
// field, sort, dan paginasi. Semua field opsional kecuali Collection.
type Query struct {
	Collection string
	Filter     Filter
	Fields     []string
	Sort       string
	Search     string
	Limit      int
	Offset     int
	// WithMeta meminta meta=filter_count pada response (untuk paginasi).
	WithMeta bool
}

// Encode menyusun query string Directus dari Query.
func (q Query) Encode() string {
	v := url.Values{}
	if len(q.Filter) > 0 {
		raw, err := json.Marshal(q.Filter)
		if err == nil {
			v.Set("filter", string(raw))
		}
	}
	if len(q.Fields) > 0 {
		v.Set("fields", strings.Join(q.Fields, ","))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.WithMeta {
		v.Set("meta", "filter_count")
	}
	return v.Encode()
}
