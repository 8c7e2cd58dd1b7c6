package cms

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query describes one read against the bucket: an object type, metadata
// filters, a projection, relationship depth and sort key.
type Query struct {
	Type   string
	Slug   string
	Filter map[string]any
	Props  []string
	Depth  int
	Sort   string
	Limit  int
	Skip   int
}

// DefaultProps is the projection used by list reads.
var DefaultProps = []string{"id", "title", "slug", "metadata"}

// NewQuery starts a query for objects of the given type.
func NewQuery(objectType string) Query {
	return Query{Type: objectType, Filter: map[string]any{}}
}

// Where adds an equality (or array-contains) filter on a field path.
func (q Query) Where(field string, value any) Query {
	filter := make(map[string]any, len(q.Filter)+1)
	for k, v := range q.Filter {
		filter[k] = v
	}
	filter[field] = value
	q.Filter = filter
	return q
}

func (q Query) WithSlug(slug string) Query {
	q.Slug = slug
	return q
}

func (q Query) WithProps(props ...string) Query {
	q.Props = props
	return q
}

func (q Query) WithDepth(depth int) Query {
	q.Depth = depth
	return q
}

// SortBy sets the sort key; a leading "-" sorts descending.
func (q Query) SortBy(key string) Query {
	q.Sort = key
	return q
}

func (q Query) WithLimit(limit int) Query {
	q.Limit = limit
	return q
}

func (q Query) filterDocument() map[string]any {
	doc := make(map[string]any, len(q.Filter)+2)
	for k, v := range q.Filter {
		doc[k] = v
	}
	if q.Type != "" {
		doc["type"] = q.Type
	}
	if q.Slug != "" {
		doc["slug"] = q.Slug
	}
	return doc
}

// Values encodes the query as URL parameters. The read key is added by the
// client so it never ends up in cache keys.
func (q Query) Values() url.Values {
	v := url.Values{}

	// json.Marshal sorts map keys, which keeps the encoding stable
	doc, _ := json.Marshal(q.filterDocument())
	v.Set("query", string(doc))

	if len(q.Props) > 0 {
		v.Set("props", strings.Join(q.Props, ","))
	}
	if q.Depth > 0 {
		v.Set("depth", strconv.Itoa(q.Depth))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	return v
}

// CacheKey is a stable key for this query, prefixed by object type.
func (q Query) CacheKey() string {
	values := q.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha1.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{'='})
		h.Write([]byte(values.Get(k)))
		h.Write([]byte{'&'})
	}
	return TypeKeyPrefix(q.Type) + hex.EncodeToString(h.Sum(nil))
}

// TypeKeyPrefix is the cache key prefix shared by all queries of a type.
func TypeKeyPrefix(objectType string) string {
	return "cms:" + objectType + ":"
}
