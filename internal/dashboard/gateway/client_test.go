package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeBackend serves an in-memory scheme store with the backend's wire
// shapes: entities as plain JSON, errors as {"error": ...}.
func newFakeBackend(t *testing.T) (*httptest.Server, map[int]*Scheme) {
	t.Helper()
	schemes := map[int]*Scheme{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/scheme", func(w http.ResponseWriter, r *http.Request) {
		var scheme Scheme
		if err := json.NewDecoder(r.Body).Decode(&scheme); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		schemes[scheme.GsNo] = &scheme
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Scheme created successfully", "gs_no": scheme.GsNo})
	})
	mux.HandleFunc("GET /api/scheme/{gsNo}", func(w http.ResponseWriter, r *http.Request) {
		var gsNo int
		fmt.Sscanf(r.PathValue("gsNo"), "%d", &gsNo)
		scheme, ok := schemes[gsNo]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("Scheme with gs_no %d not found", gsNo)})
			return
		}
		json.NewEncoder(w).Encode(scheme)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, schemes
}

func TestSchemeRoundTrip(t *testing.T) {
	server, _ := newFakeBackend(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	err := client.CreateScheme(ctx, Scheme{GsNo: 1001, NameOfScheme: "Test", PhysicalProgress: 45.5})
	require.NoError(t, err)

	got, err := client.GetScheme(ctx, 1001)
	require.NoError(t, err)

	assert.Equal(t, 1001, got.GsNo)
	assert.Equal(t, "Test", got.NameOfScheme)
	assert.Equal(t, 45.5, got.PhysicalProgress)
	assert.Equal(t, 0.0, got.TotalAllocation)
	assert.Equal(t, 0.0, got.FundsReleased)
	assert.Equal(t, 0.0, got.CommittedFundUtilization)
	assert.Equal(t, 0, got.LabourDeployed)
}

func TestGetSchemeNotFound(t *testing.T) {
	server, _ := newFakeBackend(t)
	client := NewClient(server.URL)

	_, err := client.GetScheme(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListSchemesPassesNameFilter(t *testing.T) {
	var gotName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		json.NewEncoder(w).Encode([]Scheme{{GsNo: 1, NameOfScheme: "Bhera Road"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	schemes, err := client.ListSchemes(context.Background(), "Bhera")
	require.NoError(t, err)
	assert.Equal(t, "Bhera", gotName)
	require.Len(t, schemes, 1)
	assert.Equal(t, "Bhera Road", schemes[0].NameOfScheme)
}

func TestErrorResponseCollapsesToSingleError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "No fields to update"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdateScheme(context.Background(), Scheme{GsNo: 1})
	require.Error(t, err)
	assert.Equal(t, "No fields to update", err.Error())
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload/before", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "photo.jpg", header.Filename)
		assert.Equal(t, "image-bytes", string(data))

		json.NewEncoder(w).Encode(map[string]string{
			"message":  "Before image uploaded successfully",
			"filename": "c0ffee.jpg",
			"url":      "/uploads/before/c0ffee.jpg",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	filename, err := client.Upload(context.Background(), BucketBefore, "photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "c0ffee.jpg", filename)
}

func TestImageURL(t *testing.T) {
	client := NewClient("http://localhost:8000")
	assert.Equal(t, "http://localhost:8000/uploads/after/x.jpg", client.ImageURL(BucketAfter, "x.jpg"))
}

func TestComponentUpdateOmitsAbsentFields(t *testing.T) {
	name := "Boundary wall"
	update := ComponentUpdate{ComponentName: &name}

	data, err := json.Marshal(update)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]interface{}{"component_name": "Boundary wall"}, raw)
}

func TestComponentUpdateSendsEmptyImageList(t *testing.T) {
	empty := []string{}
	update := ComponentUpdate{BeforeImages: &empty}

	data, err := json.Marshal(update)
	require.NoError(t, err)
	assert.JSONEq(t, `{"before_images":[]}`, string(data))
}
