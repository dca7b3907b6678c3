package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/freightdesk/fleetadmin/internal/codegen"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	"github.com/freightdesk/fleetadmin/internal/data/repos/testutil"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/ctxutil"
	"github.com/freightdesk/fleetadmin/internal/services"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := testutil.Logger(t)
	user := testutil.SeedUser(t, t.Context(), db, "handler@example.com")

	alloc := services.NewCodeAllocator(codegen.New(), nil, log)
	stations := NewStationHandler(log, services.NewStationService(log, repos.NewStationRepo(db, log), alloc, "India"))
	drivers := NewDriverHandler(log, services.NewDriverService(log, repos.NewDriverRepo(db, log)))
	consignees := NewPartyHandler(log, services.NewPartyService(log, types.KindConsignee, repos.NewPartyRepo(db, log), alloc, "India"))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: user.ID, Role: types.RoleAdmin})
		c.Request = c.Request.WithContext(ctx)
	})
	r.GET("/stations", stations.List)
	r.GET("/stations/:id", stations.Get)
	r.POST("/stations", stations.Create)
	r.PUT("/stations/:id", stations.Update)
	r.POST("/drivers", drivers.Create)
	r.DELETE("/drivers/:id", drivers.Delete)
	r.POST("/consignees", consignees.Create)
	r.GET("/consignees/:id", consignees.Get)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v body=%s", method, target, err, rec.Body.String())
	}
	return rec.Code, env
}

func TestStationCreateAndGet(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/stations", `{
		"stationName": "Mumbai Central",
		"zipCode": 400001,
		"contactPerson": "Ravi",
		"dialCode": "+91",
		"phoneNumber": "22 2300 1234",
		"activity1": true,
		"activity3": 1
	}`)
	if code != http.StatusCreated || env.Status != "success" || env.Message != "Station created successfully" {
		t.Fatalf("create: %d %+v", code, env)
	}
	var st types.Station
	if err := json.Unmarshal(env.Data, &st); err != nil {
		t.Fatalf("decode station: %v", err)
	}
	if !regexp.MustCompile(`^MUM001[!@#$%^&*]$`).MatchString(st.StationCode) {
		t.Fatalf("code=%q", st.StationCode)
	}
	if st.Activity1 != 1 || st.Activity2 != 0 || st.Activity3 != 1 || st.DisplayName != "Mumbai Central" {
		t.Fatalf("unexpected station %+v", st)
	}
	if st.Telephone == nil || *st.Telephone != 912223001234 {
		t.Fatalf("telephone=%v", st.Telephone)
	}

	code, env = do(t, r, http.MethodGet, "/stations/"+jsonNumber(st.ID), "")
	if code != http.StatusOK {
		t.Fatalf("get: %d %+v", code, env)
	}

	code, env = do(t, r, http.MethodGet, "/stations?search=mumbai&limit=5", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"total":1`) || !strings.Contains(string(env.Data), `"totalPages":1`) {
		t.Fatalf("list: %d %s", code, env.Data)
	}
}

func TestStationValidationErrors(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/stations", `{"stationName":"X"}`)
	if code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "missing_fields" {
		t.Fatalf("missing fields: %d %+v", code, env)
	}
	code, env = do(t, r, http.MethodPost, "/stations", `{"stationName":"X","zipCode":"abc","contactPerson":"Y"}`)
	if code != http.StatusBadRequest || env.Error.Code != "invalid_zip_code" {
		t.Fatalf("bad zip: %d %+v", code, env)
	}
	code, env = do(t, r, http.MethodGet, "/stations/abc", "")
	if code != http.StatusBadRequest || env.Error.Code != "invalid_id" {
		t.Fatalf("bad id: %d %+v", code, env)
	}
	code, env = do(t, r, http.MethodGet, "/stations/999", "")
	if code != http.StatusNotFound || env.Error.Code != "station_not_found" {
		t.Fatalf("missing: %d %+v", code, env)
	}
	code, _ = do(t, r, http.MethodPost, "/stations", `{not json`)
	if code != http.StatusBadRequest {
		t.Fatalf("malformed body: %d", code)
	}
}

func TestDriverCreateWithTagObjects(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/drivers", `{
		"firstName": "Arjun",
		"lastName": "Rao",
		"phoneNumber": 9876543210,
		"postcode": "560001",
		"licenseDate": "2021-04-01",
		"tags": [{"label": "Night", "value": "night"}, "Hazmat"]
	}`)
	if code != http.StatusCreated {
		t.Fatalf("create: %d %+v", code, env)
	}
	var d types.Driver
	if err := json.Unmarshal(env.Data, &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(d.Tags) != 2 || d.Tags[0] != "Night" || d.Tags[1] != "Hazmat" {
		t.Fatalf("tags=%v", d.Tags)
	}
	if d.LicenseDate == nil || d.LicenseDate.Format("2006-01-02") != "2021-04-01" {
		t.Fatalf("license date=%v", d.LicenseDate)
	}

	code, env = do(t, r, http.MethodDelete, "/drivers/"+jsonNumber(d.ID), "")
	if code != http.StatusOK || env.Message != "Driver deleted successfully" {
		t.Fatalf("delete: %d %+v", code, env)
	}
	code, env = do(t, r, http.MethodDelete, "/drivers/"+jsonNumber(d.ID), "")
	if code != http.StatusNotFound {
		t.Fatalf("second delete: %d %+v", code, env)
	}
}

func TestConsigneeCreate(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/consignees", `{"name":"Acme","postalCode":110020}`)
	if code != http.StatusCreated || env.Message != "Consignee created successfully" {
		t.Fatalf("create: %d %+v", code, env)
	}
	if !strings.Contains(string(env.Data), `"code":"ACM020`) {
		t.Fatalf("data=%s", env.Data)
	}
}

func TestFlexTypes(t *testing.T) {
	var body struct {
		Zip  FlexString `json:"zip"`
		On   FlexBool   `json:"on"`
		Tags TagList    `json:"tags"`
		When Date       `json:"when"`
		Nil  Date       `json:"nil"`
	}
	raw := `{"zip": 411001, "on": "1", "tags": ["a", {"value": "b"}], "when": "2024-02-29T10:00:00Z", "nil": ""}`
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Zip != "411001" || !bool(body.On) || len(body.Tags) != 2 || body.Tags[1] != "b" {
		t.Fatalf("unexpected %+v", body)
	}
	if body.When.Ptr() == nil || body.When.Ptr().Day() != 29 || body.Nil.Ptr() != nil {
		t.Fatalf("dates %+v %+v", body.When, body.Nil)
	}

	var bad struct {
		On FlexBool `json:"on"`
	}
	if err := json.Unmarshal([]byte(`{"on":"maybe"}`), &bad); err == nil {
		t.Fatalf("expected error for bad bool")
	}
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
