package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeProduct struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Rating   struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

func fakeCatalog() []fakeProduct {
	titles := []string{
		"Fjallraven Backpack",
		"Mens Casual Premium Slim Fit T-Shirts",
		"Mens Cotton Jacket",
		"Solid Gold Petite Micropave",
		"Womens Short Sleeve Shirt",
		"WD 2TB Elements Portable Drive",
	}
	products := make([]fakeProduct, len(titles))
	for i, title := range titles {
		products[i] = fakeProduct{ID: i + 1, Title: title, Price: 10.5 * float64(i+1), Category: "misc"}
		products[i].Rating.Rate = 4.1
		products[i].Rating.Count = 120 + i
	}
	return products
}

// serveCatalog starts a product endpoint and points THEMESWITCH_ENDPOINT at it.
func serveCatalog(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "themeswitch/"+version, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("THEMESWITCH_ENDPOINT", srv.URL)
	return srv
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func preferencesPath(home string) string {
	return filepath.Join(home, ".themeswitch", "preferences.json")
}

// executeCommand runs the root command and returns stdout and stderr separately.
func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
