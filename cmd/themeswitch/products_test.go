package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductsCommand_TableOutput(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusOK, fakeCatalog())

	stdout, _, err := executeCommand("products")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID  TITLE")
	require.Contains(t, stdout, "Fjallraven Backpack")
	require.Contains(t, stdout, "$10.50")
	// Buffers are not terminals, so ratings use the ASCII star.
	require.Contains(t, stdout, "* 4.1 (120)")
	require.NotContains(t, stdout, "Womens Short Sleeve Shirt")
	require.Contains(t, stdout, "Showing 1 to 4 of 6 results")
	require.Contains(t, stdout, "Page 1 of 2: [1] 2")
}

func TestProductsCommand_SecondPage(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusOK, fakeCatalog())

	stdout, _, err := executeCommand("products", "--page", "2")
	require.NoError(t, err)
	require.Contains(t, stdout, "Womens Short Sleeve Shirt")
	require.NotContains(t, stdout, "Fjallraven Backpack")
	require.Contains(t, stdout, "Showing 5 to 6 of 6 results")
	require.Contains(t, stdout, "Page 2 of 2: 1 [2]")
}

func TestProductsCommand_QueryHidesControlsOnSinglePage(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusOK, fakeCatalog())

	stdout, _, err := executeCommand("products", "--query", "SHIRT")
	require.NoError(t, err)
	require.Contains(t, stdout, "Mens Casual Premium Slim Fit T-Shirts")
	require.Contains(t, stdout, "Womens Short Sleeve Shirt")
	require.Contains(t, stdout, "Showing 1 to 2 of 2 results")
	require.NotContains(t, stdout, "Page 1 of")
}

func TestProductsCommand_NoMatches(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusOK, fakeCatalog())

	stdout, _, err := executeCommand("products", "-q", "xyz")
	require.NoError(t, err)
	require.Equal(t, "No products found matching \"xyz\"\n", stdout)
}

func TestProductsCommand_PageOutOfRange(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusOK, fakeCatalog())

	_, _, err := executeCommand("products", "--page", "3")
	require.Error(t, err)

	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	require.Contains(t, err.Error(), "Choose a page between 1 and 2.")
}

func TestProductsCommand_PageSizeFromEnvironment(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusOK, fakeCatalog())
	t.Setenv("THEMESWITCH_PAGE_SIZE", "2")

	stdout, _, err := executeCommand("products", "--page", "3")
	require.NoError(t, err)
	require.Contains(t, stdout, "Showing 5 to 6 of 6 results")
	require.Contains(t, stdout, "Page 3 of 3: 1 2 [3]")
}

func TestProductsCommand_JSONOutput(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusOK, fakeCatalog())

	stdout, _, err := executeCommand("products", "--json", "--query", "mens")
	require.NoError(t, err)

	var payload struct {
		Version    string   `json:"version"`
		Query      string   `json:"query"`
		Page       int      `json:"page"`
		PageSize   int      `json:"page_size"`
		TotalPages int      `json:"total_pages"`
		Total      int      `json:"total"`
		Pages      []string `json:"pages"`
		Products   []struct {
			ID    int     `json:"id"`
			Title string  `json:"title"`
			Price float64 `json:"price"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, "mens", payload.Query)
	require.Equal(t, 1, payload.Page)
	require.Equal(t, 4, payload.PageSize)
	require.Equal(t, 1, payload.TotalPages)
	// "Womens" contains "mens" as well.
	require.Equal(t, 3, payload.Total)
	require.Equal(t, []string{"1"}, payload.Pages)
	require.Len(t, payload.Products, 3)
	require.Equal(t, 2, payload.Products[0].ID)
}

func TestProductsCommand_FetchFailure(t *testing.T) {
	setupHome(t)
	serveCatalog(t, http.StatusInternalServerError, map[string]string{"error": "down"})

	stdout, stderr, err := executeCommand("products")
	require.Error(t, err)
	require.Empty(t, stdout)
	require.Contains(t, err.Error(), "Failed to list products")
	require.Contains(t, err.Error(), "500")
	require.Contains(t, stderr, "products command failed")
}

func TestProductsCommand_InvalidConfiguration(t *testing.T) {
	setupHome(t)
	t.Setenv("THEMESWITCH_PAGE_SIZE", "0")

	_, _, err := executeCommand("products")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
}
