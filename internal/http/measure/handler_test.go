package measure_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	measurehandler "github.com/enildoa/sp-back/internal/http/measure"
	"github.com/enildoa/sp-back/internal/measure"
)

func newTestRouter(t *testing.T) (http.Handler, *measure.MockRepository, *measure.MockValueExtractor, *measure.MockFileStore) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := measure.NewMockRepository(ctrl)
	extractor := measure.NewMockValueExtractor(ctrl)
	files := measure.NewMockFileStore(ctrl)

	handler := measurehandler.NewHandler(measure.NewService(repo, extractor, files))

	router := chi.NewRouter()
	router.Route("/measures", handler.Routes)

	return router, repo, extractor, files
}

func uploadBody(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="meter.jpeg"`)
		header.Set("Content-Type", "image/jpeg")

		part, err := mw.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, description string) {
	t.Helper()

	var body struct {
		ErrorCode        string `json:"error_code"`
		ErrorDescription string `json:"error_description"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body.ErrorCode, body.ErrorDescription
}

func TestHandler_Upload(t *testing.T) {
	router, repo, extractor, files := newTestRouter(t)

	image := []byte("fake-jpeg-bytes")

	repo.EXPECT().
		ExistsForMonth(gomock.Any(), "C1", measure.TypeWater, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)).
		Return(false, nil)
	extractor.EXPECT().
		ExtractValue(gomock.Any(), image, "image/jpeg", "water").
		Return(decimal.RequireFromString("2.21"), nil)
	files.EXPECT().
		Save(gomock.Any(), gomock.Any(), image).
		Return("http://localhost:8080/files/image-1.jpeg", nil)
	repo.EXPECT().
		CreateMeasure(gomock.Any(), gomock.Any()).
		Return(nil)

	body, contentType := uploadBody(t, map[string]string{
		"customer_code":    "C1",
		"measure_type":     "WATER",
		"measure_datetime": "2024-03-15T10:00:00Z",
	}, image)

	req := httptest.NewRequest(http.MethodPost, "/measures/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ImageURL     string          `json:"image_url"`
		MeasureValue decimal.Decimal `json:"measure_value"`
		MeasureID    uuid.UUID       `json:"measure_id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "http://localhost:8080/files/image-1.jpeg", resp.ImageURL)
	assert.Equal(t, "2.21", resp.MeasureValue.String())
	assert.NotEqual(t, uuid.Nil, resp.MeasureID)
}

func TestHandler_Upload_DoubleReport(t *testing.T) {
	router, repo, _, _ := newTestRouter(t)

	repo.EXPECT().
		ExistsForMonth(gomock.Any(), "C1", measure.TypeWater, gomock.Any()).
		Return(true, nil)

	body, contentType := uploadBody(t, map[string]string{
		"customer_code":    "C1",
		"measure_type":     "water",
		"measure_datetime": "2024-03-28T09:00:00Z",
	}, []byte("img"))

	req := httptest.NewRequest(http.MethodPost, "/measures/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	code, description := decodeError(t, rec)
	assert.Equal(t, "DOUBLE_REPORT", code)
	assert.Equal(t, "Leitura do mês já realizada", description)
}

func TestHandler_Upload_InvalidType(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	body, contentType := uploadBody(t, map[string]string{
		"customer_code":    "C1",
		"measure_type":     "electricity",
		"measure_datetime": "2024-03-15T10:00:00Z",
	}, []byte("img"))

	req := httptest.NewRequest(http.MethodPost, "/measures/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, _ := decodeError(t, rec)
	assert.Equal(t, "INVALID_TYPE", code)
}

func TestHandler_Upload_InvalidDatetime(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	body, contentType := uploadBody(t, map[string]string{
		"customer_code":    "C1",
		"measure_type":     "WATER",
		"measure_datetime": "15/03/2024",
	}, []byte("img"))

	req := httptest.NewRequest(http.MethodPost, "/measures/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, description := decodeError(t, rec)
	assert.Equal(t, "INVALID_DATA", code)
	assert.Contains(t, description, "measure_datetime")
}

func TestHandler_Upload_MissingImage(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	body, contentType := uploadBody(t, map[string]string{
		"customer_code":    "C1",
		"measure_type":     "WATER",
		"measure_datetime": "2024-03-15T10:00:00Z",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/measures/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, _ := decodeError(t, rec)
	assert.Equal(t, "INVALID_DATA", code)
}

func TestHandler_List(t *testing.T) {
	router, repo, _, _ := newTestRouter(t)

	id := uuid.New()
	datetime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListByCustomer(gomock.Any(), "C1", nil).
		Return([]*measure.Measure{{
			ID:           id,
			CustomerCode: "C1",
			ImageURL:     "http://localhost:8080/files/image-1.jpeg",
			Value:        decimal.RequireFromString("2.21"),
			Type:         measure.TypeWater,
			Datetime:     datetime,
			HasConfirmed: true,
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/measures/C1/list", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CustomerCode string `json:"customer_code"`
		Measures     []struct {
			MeasureUUID     uuid.UUID `json:"measure_uuid"`
			MeasureDatetime time.Time `json:"measure_datetime"`
			MeasureType     string    `json:"measure_type"`
			HasConfirmed    bool      `json:"has_confirmed"`
			ImageURL        string    `json:"image_url"`
		} `json:"measures"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "C1", resp.CustomerCode)
	require.Len(t, resp.Measures, 1)
	assert.Equal(t, id, resp.Measures[0].MeasureUUID)
	assert.Equal(t, "WATER", resp.Measures[0].MeasureType)
	assert.True(t, resp.Measures[0].HasConfirmed)

	// The listing never exposes the extracted value.
	assert.NotContains(t, rec.Body.String(), "measure_value")
}

func TestHandler_List_Filtered(t *testing.T) {
	router, repo, _, _ := newTestRouter(t)

	gasType := measure.TypeGas

	repo.EXPECT().
		ListByCustomer(gomock.Any(), "C1", &gasType).
		Return([]*measure.Measure{{ID: uuid.New(), Type: measure.TypeGas}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/measures/C1/list?measure_type=gas", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_List_NotFound(t *testing.T) {
	router, repo, _, _ := newTestRouter(t)

	repo.EXPECT().
		ListByCustomer(gomock.Any(), "C9", nil).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/measures/C9/list", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	code, description := decodeError(t, rec)
	assert.Equal(t, "MEASURES_NOT_FOUND", code)
	assert.Equal(t, "Nenhuma leitura encontrada", description)
}

func TestHandler_List_InvalidType(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/measures/C1/list?measure_type=steam", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, _ := decodeError(t, rec)
	assert.Equal(t, "INVALID_TYPE", code)
}

func TestHandler_Confirm(t *testing.T) {
	router, repo, _, _ := newTestRouter(t)

	id := uuid.New()
	value := decimal.RequireFromString("2.21")

	repo.EXPECT().
		FindForConfirmation(gomock.Any(), id, gomock.Cond(func(x any) bool { v, ok := x.(decimal.Decimal); return ok && v.Equal(value) })).
		Return(&measure.Measure{ID: id, Value: value}, nil)
	repo.EXPECT().
		SetConfirmed(gomock.Any(), id).
		Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/measures/confirm",
		strings.NewReader(`{"measure_uuid":"`+id.String()+`","confirmed_value":2.21}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestHandler_Confirm_InvalidUUID(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/measures/confirm",
		strings.NewReader(`{"measure_uuid":"not-a-uuid","confirmed_value":2.21}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, _ := decodeError(t, rec)
	assert.Equal(t, "INVALID_DATA", code)
}

func TestHandler_Confirm_NotFound(t *testing.T) {
	router, repo, _, _ := newTestRouter(t)

	id := uuid.New()

	repo.EXPECT().
		FindForConfirmation(gomock.Any(), id, gomock.Any()).
		Return(nil, measure.ErrNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/measures/confirm",
		strings.NewReader(`{"measure_uuid":"`+id.String()+`","confirmed_value":99}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	code, _ := decodeError(t, rec)
	assert.Equal(t, "MEASURE_NOT_FOUND", code)
}

func TestHandler_Confirm_Duplicate(t *testing.T) {
	router, repo, _, _ := newTestRouter(t)

	id := uuid.New()

	repo.EXPECT().
		FindForConfirmation(gomock.Any(), id, gomock.Any()).
		Return(&measure.Measure{ID: id, HasConfirmed: true}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/measures/confirm",
		strings.NewReader(`{"measure_uuid":"`+id.String()+`","confirmed_value":2.21}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	code, _ := decodeError(t, rec)
	assert.Equal(t, "CONFIRMATION_DUPLICATE", code)
}
