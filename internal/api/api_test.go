package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
	"github.com/ihbirlik/geocoord-pro/internal/domain/dto"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/bst"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/utils"
	"github.com/ihbirlik/geocoord-pro/internal/service/well"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	svc, err := NewAPIService(store.NewMemoryStore(), well.WithIDProvider(bst.NewCounterProvider("id")))
	require.NoError(t, err)
	return svc.Handler()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestAPI(t), http.MethodGet, "/api/v1/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestCreateWell_Validation(t *testing.T) {
	h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/wells", `{"well_type":"CORED"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[domain.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Message, "well_no")

	rec = doRequest(t, h, http.MethodPost, "/api/v1/wells", `{"well_no":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/wells", `{"well_no":"SK-1","well_type":"DIAGONAL"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWellLifecycle(t *testing.T) {
	h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/wells", `{"well_no":"SK-1","diameter":"76"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	w := decode[domain.Well](t, rec)
	base := "/api/v1/wells/" + w.ID

	rec = doRequest(t, h, http.MethodPost, base+"/stages", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	w = decode[domain.Well](t, rec)
	require.Len(t, w.Stages, 1)
	stage := w.Stages[0]
	require.Len(t, stage.Measurements, 5)

	rec = doRequest(t, h, http.MethodPut, base+"/stages/"+stage.ID+"/measurements/"+stage.Measurements[2].ID,
		`{"total_loss":"30"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	w = decode[domain.Well](t, rec)
	assert.NotEqual(t, "0.00", w.Stages[0].Measurements[2].CalculatedLugeon)
	assert.Equal(t, w.Stages[0].Measurements[2].CalculatedLugeon, w.Stages[0].RepresentativeLugeon)

	rec = doRequest(t, h, http.MethodPut, base+"/stages/"+stage.ID+"/flow-type", `{"flow_type":"Sideways","manual":true}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPut, base+"/stages/"+stage.ID+"/depths", `{"packer_type":"TRIPLE"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPut, base+"/stages/"+stage.ID+"/config", `{"max_pressure":"5e6"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPut, base+"/stages/"+stage.ID+"/config",
		`{"pressure_type":"TYPE_A","max_pressure":"3","is_reversible":false}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	w = decode[domain.Well](t, rec)
	assert.Len(t, w.Stages[0].Measurements, 3)

	rec = doRequest(t, h, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, w, decode[domain.Well](t, rec))

	rec = doRequest(t, h, http.MethodDelete, base, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, h, http.MethodGet, base, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[domain.ErrorResponse](t, rec).Message, "well not found")
}

func TestLithologyEndpoints(t *testing.T) {
	h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/wells", `{"well_no":"SK-2"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	w := decode[domain.Well](t, rec)
	base := "/api/v1/wells/" + w.ID

	doc := `<table><tr><th>Başlangıç (m)</th><th>Bitiş (m)</th><th>Lugeon</th></tr><tr><td>0</td><td>2</td><td>-</td></tr></table>`
	rec = doRequest(t, h, http.MethodPost, base+"/lithology/import", doc, map[string]string{
		echo.HeaderContentType: echo.MIMETextHTMLCharsetUTF8,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	w = decode[domain.Well](t, rec)
	require.Len(t, w.Lithology, 1)

	rec = doRequest(t, h, http.MethodPut, base+"/lithology/"+w.Lithology[0].ID+"/lugeon", `{"lugeon":"50"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	w = decode[domain.Well](t, rec)
	assert.Equal(t, bst.PermeabilityHigh, w.Lithology[0].PermeabilityStatus)

	rec = doRequest(t, h, http.MethodPost, base+"/lithology/sync", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sync := decode[dto.SyncLithologyResponse](t, rec)
	assert.Zero(t, sync.Synced)
	assert.Equal(t, "50", sync.Well.Lithology[0].Lugeon)

	rec = doRequest(t, h, http.MethodPost, base+"/lithology/import", `{"html":"<p>none</p>"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBSTTools(t *testing.T) {
	h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/bst/pressure-steps",
		`{"max_pressure":"6","pressure_type":"TIP_B","is_reversible":true}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	steps := decode[dto.PressureStepsResponse](t, rec)
	assert.Equal(t, domain.PressureTypeB, steps.PressureType)
	assert.Equal(t, []float64{2, 4, 6, 4, 2}, steps.Steps)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/bst/pressure-steps", `{"max_pressure":"1e17","pressure_type":"TYPE_A"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[domain.ErrorResponse](t, rec).Message, "max_pressure")

	rec = doRequest(t, h, http.MethodPost, "/api/v1/bst/lugeon", `{"total_loss":"25","applied_pressure":"2","stage_length":"0"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	lu := decode[dto.LugeonResponse](t, rec)
	assert.Equal(t, "0.00", lu.Lugeon)
	assert.Equal(t, "0.00", lu.EffectivePressure)
	assert.Equal(t, bst.PermeabilityVeryLow, lu.PermeabilityStatus)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/bst/permeability?lugeon=abc", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bst.PermeabilityUnknown, decode[dto.PermeabilityResponse](t, rec).Status)
}

func TestAdminRecompute(t *testing.T) {
	viper.Set(constants.ViperSigningKeyKey, "signing-key")
	viper.Set(constants.ViperSecretKey, "admin-secret")
	t.Cleanup(func() {
		viper.Set(constants.ViperSigningKeyKey, "")
		viper.Set(constants.ViperSecretKey, "")
	})

	h := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/wells", `{"well_no":"SK-3"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/admin/wells/recompute", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	wrong, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: "guess"})
	require.NoError(t, err)
	rec = doRequest(t, h, http.MethodPost, "/api/v1/admin/wells/recompute", "", map[string]string{
		echo.HeaderAuthorization: "Bearer " + wrong,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: "admin-secret"})
	require.NoError(t, err)
	rec = doRequest(t, h, http.MethodPost, "/api/v1/admin/wells/recompute", "", map[string]string{
		echo.HeaderAuthorization: "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, decode[dto.RecomputeResponse](t, rec).Processed)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/wells/recompute", nil)
	req.AddCookie(&http.Cookie{Name: constants.CookieKeySecretToken, Value: token})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
