package hatena_test

import (
	"testing"

	"github.com/fwojciec/hatenadl"
	"github.com/fwojciec/hatenadl/hatena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_entry_route(t *testing.T) {
	t.Parallel()

	target, err := hatena.Match("https://blog.hatenablog.com/entry/2024/01/02/123456")
	require.NoError(t, err)

	assert.Equal(t, hatenadl.RouteEntry, target.Route)
	assert.Equal(t, "blog.hatenablog.com", target.Domain)
	assert.Equal(t, "/entry/2024/01/02/123456", target.Path)
	assert.Nil(t, target.Query, "entry routes accept no query parameters")
}

func TestMatch_entry_route_drops_query_and_fragment(t *testing.T) {
	t.Parallel()

	target, err := hatena.Match("https://blog.hateblo.jp/entry/abc?utm_source=x#section")
	require.NoError(t, err)

	assert.Equal(t, "/entry/abc", target.Path)
	assert.Nil(t, target.Query)
}

func TestMatch_home_route(t *testing.T) {
	t.Parallel()

	t.Run("bare domain without scheme", func(t *testing.T) {
		t.Parallel()

		target, err := hatena.Match("blog.hatenadiary.com")
		require.NoError(t, err)
		assert.Equal(t, hatenadl.RouteHome, target.Route)
		assert.Equal(t, "blog.hatenadiary.com", target.Domain)
		assert.Equal(t, "", target.Path)
	})

	t.Run("trailing slash and page parameter", func(t *testing.T) {
		t.Parallel()

		target, err := hatena.Match("https://blog.hatenablog.jp/?page=1704034862")
		require.NoError(t, err)
		assert.Equal(t, hatenadl.RouteHome, target.Route)
		assert.Equal(t, "/", target.Path)
		assert.Equal(t, map[string]string{"page": "1704034862"}, target.Query)
	})
}

func TestMatch_archive_route(t *testing.T) {
	t.Parallel()

	for _, path := range []string{
		"/archive",
		"/archive/2024",
		"/archive/2024/01",
		"/archive/2024/01/02",
		"/archive/category/Photos",
	} {
		target, err := hatena.Match("https://blog.hatenablog.com" + path)
		require.NoError(t, err, path)
		assert.Equal(t, hatenadl.RouteArchive, target.Route, path)
		assert.Equal(t, path, target.Path)
	}
}

func TestMatch_search_route_forwards_only_q(t *testing.T) {
	t.Parallel()

	target, err := hatena.Match("https://blog.hatenablog.com/search?q=a&utm_source=x")
	require.NoError(t, err)

	assert.Equal(t, hatenadl.RouteSearch, target.Route)
	assert.Equal(t, "/search", target.Path)
	assert.Equal(t, map[string]string{"q": "a"}, target.Query, "utm_source must be dropped")
}

func TestMatch_repeated_query_key_keeps_first_value(t *testing.T) {
	t.Parallel()

	target, err := hatena.Match("https://blog.hatenablog.com/search?q=first&q=second")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"q": "first"}, target.Query)
}

func TestMatch_synthetic_prefix_routes_custom_domains(t *testing.T) {
	t.Parallel()

	target, err := hatena.Match("hatenablog:https://www.example.net/entry/custom/post")
	require.NoError(t, err)

	assert.Equal(t, hatenadl.RouteEntry, target.Route)
	assert.Equal(t, "www.example.net", target.Domain)
	assert.Equal(t, "/entry/custom/post", target.Path)
}

func TestMatch_unrecognized_url(t *testing.T) {
	t.Parallel()

	_, err := hatena.Match("https://www.example.net/entry/custom/post")
	require.Error(t, err)
	assert.Equal(t, hatenadl.ENOTFOUND, hatenadl.ErrorCode(err))
}

func TestMatch_archive_path_is_not_a_home_target(t *testing.T) {
	t.Parallel()

	target, err := hatena.Match("https://blog.hatenablog.com/archive/2024")
	require.NoError(t, err)
	assert.Equal(t, hatenadl.RouteArchive, target.Route)
}
