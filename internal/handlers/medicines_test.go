package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type medicinePage struct {
	Items []struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Rating      *float64 `json:"rating"`
	} `json:"items"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
}

func TestGetMedicinesPagination(t *testing.T) {
	router, db := newTestServer(t)
	for i := 1; i <= 25; i++ {
		createMedicine(t, db, fmt.Sprintf("Medicine %02d", i), "desc", "", nil)
	}

	w := doRequest(t, router, http.MethodGet, "/api/medicines?page=1&per_page=10", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page medicinePage
	decodeBody(t, w, &page)
	assert.Len(t, page.Items, 10)
	assert.EqualValues(t, 25, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 1, page.Page)

	w = doRequest(t, router, http.MethodGet, "/api/medicines?page=3&per_page=10", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &page)
	assert.Len(t, page.Items, 5)

	// Out-of-range pages return an empty list, not an error.
	w = doRequest(t, router, http.MethodGet, "/api/medicines?page=99&per_page=10", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &page)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 25, page.Total)
}

func TestGetMedicinesSearch(t *testing.T) {
	router, db := newTestServer(t)
	createMedicine(t, db, "Paracetamol 500", "desc", "", nil)
	createMedicine(t, db, "Ibuprofen 200", "desc", "", nil)

	w := doRequest(t, router, http.MethodGet, "/api/medicines?search=PARACET", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page medicinePage
	decodeBody(t, w, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Paracetamol 500", page.Items[0].Name)

	// No match: empty items, zero total, zero pages.
	w = doRequest(t, router, http.MethodGet, "/api/medicines?page=1&per_page=10&search=zzz-no-match", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &page)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
}

func TestGetMedicinesTruncatesDescription(t *testing.T) {
	router, db := newTestServer(t)
	long := strings.Repeat("x", 150)
	createMedicine(t, db, "Long", long, "", nil)
	createMedicine(t, db, "Short", "short description", "", nil)

	w := doRequest(t, router, http.MethodGet, "/api/medicines", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page medicinePage
	decodeBody(t, w, &page)
	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		switch item.Name {
		case "Long":
			assert.Equal(t, strings.Repeat("x", 100)+"...", item.Description)
		case "Short":
			assert.Equal(t, "short description", item.Description)
		}
	}
}

func TestGetMedicineByID(t *testing.T) {
	router, db := newTestServer(t)
	medicine := createMedicine(t, db, "Udiliv", "desc", "Nausea, Itching , Diarrhea", nil)

	w := doRequest(t, router, http.MethodGet, "/api/medicines/"+medicine.ID, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		SideEffects []string `json:"side_effects"`
	}
	decodeBody(t, w, &detail)
	assert.Equal(t, medicine.ID, detail.ID)
	assert.Equal(t, []string{"Nausea", "Itching", "Diarrhea"}, detail.SideEffects)
}

func TestGetMedicineByIDNotFound(t *testing.T) {
	router, _ := newTestServer(t)
	w := doRequest(t, router, http.MethodGet, "/api/medicines/missing-id", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFeaturedMedicine(t *testing.T) {
	router, db := newTestServer(t)

	// No medicines at all: 404.
	w := doRequest(t, router, http.MethodGet, "/api/featured-medicine", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	createMedicine(t, db, "Unrated", "desc", "", nil)
	createMedicine(t, db, "Mediocre", "desc", "", floatPtr(3.1))
	best := createMedicine(t, db, "Best", "desc", "", floatPtr(4.8))

	w = doRequest(t, router, http.MethodGet, "/api/featured-medicine", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, w, &detail)
	assert.Equal(t, best.ID, detail.ID)
}

func TestGetAlternatives(t *testing.T) {
	router, db := newTestServer(t)
	medicine := createMedicine(t, db, "Udiliv", "desc", "", nil)
	other := createMedicine(t, db, "Other", "desc", "", nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Exec(
			"INSERT INTO generic_alternatives (id, medicine_id, name, price, availability) VALUES (?, ?, ?, ?, ?)",
			fmt.Sprintf("alt-%d", i), medicine.ID, "Generic", 5.0, "In Stock",
		).Error)
	}

	w := doRequest(t, router, http.MethodGet, "/api/medicines/"+medicine.ID+"/alternatives", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var alternatives []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Availability string `json:"availability"`
	}
	decodeBody(t, w, &alternatives)
	assert.Len(t, alternatives, 3)

	// A medicine without alternatives yields an empty list.
	w = doRequest(t, router, http.MethodGet, "/api/medicines/"+other.ID+"/alternatives", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &alternatives)
	assert.Empty(t, alternatives)

	// An unknown medicine yields 404.
	w = doRequest(t, router, http.MethodGet, "/api/medicines/missing-id/alternatives", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
