package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joylabs/catalogsync/internal/service"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/models"
)

func TestApplyCatalogChange_ReturnsConfirmedObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	f.builder.confirmed = models.CatalogObject{
		ID:      "TAX_1",
		Type:    models.TypeTax,
		Version: 6,
		TaxData: &models.TaxData{Name: "State Tax"},
	}
	router := f.handler.Init()

	body, err := json.Marshal(models.LocalChange{
		Object: models.CatalogObject{
			ID:      "TAX_1",
			Type:    models.TypeTax,
			Version: 5,
			TaxData: &models.TaxData{Name: "State Tax"},
		},
	})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/catalog/changes", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, f.builder.received, 1)
	assert.Equal(t, "TAX_1", f.builder.received[0].Object.ID)

	var confirmed models.CatalogObject
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &confirmed))
	assert.Equal(t, int64(6), confirmed.Version)
}

func TestApplyCatalogChange_InvalidJSONIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodPost, "/api/catalog/changes", bytes.NewReader([]byte(`{"object":`))))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, f.builder.received)
}

func TestApplyCatalogChange_ConflictExhaustionMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)
	f.builder.err = service.ErrConflictRetryExhausted
	router := f.handler.Init()

	body, err := json.Marshal(models.LocalChange{
		Object: models.CatalogObject{ID: "TAX_1", Type: models.TypeTax},
	})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/catalog/changes", bytes.NewReader(body)))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestListCatalogObjects_PassesFilterFromQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	wantFilter := store.Filter{
		NamePrefix:     "Cof",
		ParentID:       "CAT_1",
		IncludeDeleted: true,
		Limit:          25,
	}
	objects := []models.CatalogObject{
		{ID: "ITEM_1", Type: models.TypeItem, ItemData: &models.ItemData{Name: "Coffee"}},
	}
	f.catalog.EXPECT().
		QueryObjects(gomock.Any(), models.TypeItem, wantFilter).
		Return(objects, nil)
	router := f.handler.Init()

	target := "/api/catalog/objects/ITEM?name_prefix=Cof&parent_id=CAT_1&include_deleted=true&limit=25"
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Objects []models.CatalogObject `json:"objects"`
		Length  int                    `json:"length"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Length)
	require.Len(t, response.Objects, 1)
	assert.Equal(t, "ITEM_1", response.Objects[0].ID)
}

func TestListCatalogObjects_InvalidLimitIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodGet, "/api/catalog/objects/ITEM?limit=lots", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListCatalogObjects_UnknownTypeMapsToBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	f.catalog.EXPECT().
		QueryObjects(gomock.Any(), "GIFT_CARD", gomock.Any()).
		Return(nil, store.ErrUnknownObjectType)
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/catalog/objects/GIFT_CARD", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCatalogObject_ReturnsObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	f.catalog.EXPECT().
		GetObject(gomock.Any(), models.TypeCategory, "CAT_1").
		Return(models.CatalogObject{
			ID:           "CAT_1",
			Type:         models.TypeCategory,
			Version:      3,
			CategoryData: &models.CategoryData{Name: "Drinks"},
		}, nil)
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/catalog/objects/CATEGORY/CAT_1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var object models.CatalogObject
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &object))
	assert.Equal(t, "CAT_1", object.ID)
	assert.Equal(t, "Drinks", object.Name())
}

func TestGetCatalogObject_NotFoundMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	f.catalog.EXPECT().
		GetObject(gomock.Any(), models.TypeCategory, "CAT_MISSING").
		Return(models.CatalogObject{}, store.ErrObjectNotFound)
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/catalog/objects/CATEGORY/CAT_MISSING", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetCatalogImage_ServesCachedBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	// Minimal PNG header so content sniffing picks the right type.
	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	f.images.EXPECT().Get("IMG_1").Return(pngBytes, nil)
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/catalog/images/IMG_1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, pngBytes, recorder.Body.Bytes())
}

func TestGetCatalogImage_NotCachedMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	f.images.EXPECT().Get("IMG_MISSING").Return(nil, store.ErrImageNotCached)
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/catalog/images/IMG_MISSING", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
