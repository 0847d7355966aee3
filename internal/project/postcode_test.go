package project

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostcodeClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "geheim", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "/lookup/1015CR/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"street": "Keizersgracht", "city": "Amsterdam", "postcode": "1015CR"}`))
	}))
	defer server.Close()

	client := NewPostcodeClient("geheim")
	client.baseURL = server.URL

	result, err := client.Lookup(context.Background(), "1015 cr", "42")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Keizersgracht", result.Street)
	assert.Equal(t, "Amsterdam", result.City)
}

func TestPostcodeClient_Lookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewPostcodeClient("geheim")
	client.baseURL = server.URL

	result, err := client.Lookup(context.Background(), "9999ZZ", "1")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPostcodeClient_Lookup_NoAPIKey(t *testing.T) {
	client := NewPostcodeClient("")

	result, err := client.Lookup(context.Background(), "1015CR", "42")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPostcodeClient_Lookup_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPostcodeClient("geheim")
	client.baseURL = server.URL

	_, err := client.Lookup(context.Background(), "1015CR", "42")

	assert.Error(t, err)
}
