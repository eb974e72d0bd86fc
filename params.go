package fetchkit

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// Params is a flat mapping of query parameter names to values. Values may
// be scalars, nil, or slices; see DefaultParamsSerializer for how each is
// encoded.
type Params map[string]any

// ParamsSerializer turns a Params mapping into a raw query string without
// the leading "?". Returning an empty string means no query string is
// appended to the URL.
type ParamsSerializer func(params Params) string

// DefaultParamsSerializer encodes params with the following rules: nil
// values are omitted, slice values repeat the key once per element (nil
// elements skipped), and an empty string is kept as key= so it stays
// distinguishable from an absent key. Keys are emitted in sorted order so
// output is deterministic.
func DefaultParamsSerializer(params Params) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		v := params[k]
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				el := rv.Index(i).Interface()
				if el == nil {
					continue
				}
				pairs = append(pairs, encodePair(k, el))
			}
			continue
		}
		pairs = append(pairs, encodePair(k, v))
	}
	return strings.Join(pairs, "&")
}

func encodePair(key string, value any) string {
	return url.QueryEscape(key) + "=" + url.QueryEscape(fmt.Sprint(value))
}
