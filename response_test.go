package fetchkit

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonHeader() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json; charset=utf-8")
	return h
}

func textHeader() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "text/plain")
	return h
}

func TestDecodeBody_Negotiation(t *testing.T) {
	t.Run("json content type decodes as JSON", func(t *testing.T) {
		data, err := decodeBody([]byte(`{"a":1}`), jsonHeader(), ResponseTypeAuto)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, data)
	})

	t.Run("non-json content type decodes as text", func(t *testing.T) {
		data, err := decodeBody([]byte(`{"a":1}`), textHeader(), ResponseTypeAuto)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, data)
	})

	t.Run("missing content type decodes as text", func(t *testing.T) {
		data, err := decodeBody([]byte("hello"), make(http.Header), ResponseTypeAuto)
		require.NoError(t, err)
		assert.Equal(t, "hello", data)
	})

	t.Run("explicit blob wins over content type", func(t *testing.T) {
		data, err := decodeBody([]byte{0x1, 0x2}, jsonHeader(), ResponseTypeBlob)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x1, 0x2}, data)
	})

	t.Run("explicit array buffer returns raw bytes", func(t *testing.T) {
		data, err := decodeBody([]byte("raw"), textHeader(), ResponseTypeArrayBuffer)
		require.NoError(t, err)
		assert.Equal(t, []byte("raw"), data)
	})

	t.Run("explicit text ignores json content type", func(t *testing.T) {
		data, err := decodeBody([]byte(`[1]`), jsonHeader(), ResponseTypeText)
		require.NoError(t, err)
		assert.Equal(t, "[1]", data)
	})

	t.Run("form data decodes into values", func(t *testing.T) {
		data, err := decodeBody([]byte("a=1&a=2&b=x"), make(http.Header), ResponseTypeFormData)
		require.NoError(t, err)
		assert.Equal(t, url.Values{"a": {"1", "2"}, "b": {"x"}}, data)
	})

	t.Run("empty JSON body decodes to nil", func(t *testing.T) {
		data, err := decodeBody(nil, jsonHeader(), ResponseTypeAuto)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		_, err := decodeBody([]byte(`{`), jsonHeader(), ResponseTypeAuto)
		assert.Error(t, err)
	})
}

func TestErrorResponse_Error(t *testing.T) {
	err := &ErrorResponse{Status: http.StatusNotFound}
	assert.Contains(t, err.Error(), "404")
}
