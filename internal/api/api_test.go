package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/erazemk/zavetisce/internal/auth"
	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/notify"
	"github.com/erazemk/zavetisce/internal/rescue"
)

const adminEmail = "admin@zavetisce.si"

type testServer struct {
	*httptest.Server
	db    *db.DB
	svc   *rescue.Service
	admin string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zaptest.NewLogger(t)
	database := db.NewTestDB(t)
	reg := prometheus.NewRegistry()

	dispatcher := notify.New(
		notify.StoreSink{DB: database, Now: time.Now, NewID: uuid.NewString},
		notify.Options{},
		log,
		notify.NewMetrics(reg),
	)
	t.Cleanup(func() { dispatcher.Shutdown(context.Background()) })

	svc := rescue.New(database, dispatcher, rescue.WithLogger(log))
	_, _, err := svc.EnsureAdmin(context.Background(), adminEmail)
	require.NoError(t, err)

	router := NewRouter(Options{
		Service:  svc,
		Issuer:   auth.NewIssuer("test-secret", time.Hour),
		Logger:   log,
		Gatherer: reg,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	ts := &testServer{Server: srv, db: database, svc: svc}
	ts.admin = ts.login(t, adminEmail, "Admin")
	return ts
}

func (ts *testServer) login(t *testing.T, email, role string) string {
	t.Helper()
	var resp loginResponse
	status := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "role": role}, &resp)
	require.Equal(t, http.StatusOK, status, "login %s as %s", email, role)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// do sends a JSON request and decodes the response into out when non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (ts *testServer) createUser(t *testing.T, u model.User) *model.User {
	t.Helper()
	var created model.User
	status := ts.do(t, http.MethodPost, "/api/users", ts.admin, u, &created)
	require.Equal(t, http.StatusCreated, status)
	return &created
}

func (ts *testServer) createAnimal(t *testing.T, specs string) *model.Animal {
	t.Helper()
	var created model.Animal
	status := ts.do(t, http.MethodPost, "/api/animals", ts.admin, model.Animal{Specifications: specs}, &created)
	require.Equal(t, http.StatusCreated, status)
	return &created
}

func (ts *testServer) notifications(t *testing.T, token string) []model.Notification {
	t.Helper()
	var notes []model.Notification
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/notifications", token, nil, &notes))
	return notes
}

func TestLogin(t *testing.T) {
	ts := setupTestServer(t)

	assert.Equal(t, http.StatusUnauthorized,
		ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail, "role": "Person"}, nil))
	assert.Equal(t, http.StatusUnauthorized,
		ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@x.si", "role": "Admin"}, nil))
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail, "role": "Pirate"}, nil))
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail}, nil))

	var me model.User
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/me", ts.admin, nil, &me))
	assert.Equal(t, model.RoleAdmin, me.Role)
	assert.Equal(t, adminEmail, me.Email)
}

func TestRegister(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name string
		user model.User
		want int
	}{
		{"person", model.User{Name: "Ana", Email: "ana@x.si", Role: model.RolePerson}, http.StatusCreated},
		{"volunteer", model.User{Name: "Bor", Email: "bor@x.si", Role: "volunteer",
			Volunteer: &model.VolunteerDetails{Availability: "weekends"}}, http.StatusCreated},
		{"ngo", model.User{Name: "Tačke", Email: "ngo@x.si", Role: model.RoleNGO,
			NGO: &model.NGODetails{OrgName: "Tačke"}}, http.StatusCreated},
		{"admin", model.User{Name: "Eve", Email: "eve@x.si", Role: model.RoleAdmin}, http.StatusBadRequest},
		{"admin lowercase", model.User{Name: "Eve", Email: "eve@x.si", Role: "admin"}, http.StatusBadRequest},
		{"volunteer without details", model.User{Name: "Vid", Email: "vid@x.si", Role: model.RoleVolunteer}, http.StatusBadRequest},
		{"duplicate email", model.User{Name: "Ana 2", Email: "ANA@x.si", Role: model.RolePerson}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created model.User
			status := ts.do(t, http.MethodPost, "/api/auth/register", "", tt.user, &created)
			require.Equal(t, tt.want, status)
			if status == http.StatusCreated {
				assert.NotEmpty(t, created.ID)
				assert.Equal(t, tt.user.Name, created.Name)
			}
		})
	}

	token := ts.login(t, "bor@x.si", "Volunteer")
	var me model.User
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/me", token, nil, &me))
	assert.Equal(t, model.RoleVolunteer, me.Role)
	assert.Equal(t, "weekends", me.Volunteer.Availability)

	var admins []model.User
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/users?role=admin", ts.admin, nil, &admins))
	assert.Len(t, admins, 1)
}

func TestStaffNotifications(t *testing.T) {
	ts := setupTestServer(t)

	ana := ts.createUser(t, model.User{Name: "Ana", Email: "ana@x.si", Role: model.RolePerson})
	ts.createUser(t, model.User{Name: "Bor", Email: "bor@x.si", Role: model.RolePerson})
	ts.createUser(t, model.User{Name: "Tačke", Email: "ngo@x.si", Role: model.RoleNGO, NGO: &model.NGODetails{OrgName: "Tačke"}})
	anaToken := ts.login(t, "ana@x.si", "Person")
	borToken := ts.login(t, "bor@x.si", "Person")
	ngo := ts.login(t, "ngo@x.si", "NGO")

	send := func(token, recipient, message string) int {
		return ts.do(t, http.MethodPost, "/api/notifications", token,
			notificationRequest{RecipientID: recipient, Message: message}, nil)
	}
	require.Equal(t, http.StatusCreated, send(ngo, ana.ID, "Please bring Rex's vaccination card."))
	assert.Equal(t, http.StatusForbidden, send(borToken, ana.ID, "hi"))
	assert.Equal(t, http.StatusNotFound, send(ts.admin, "ghost", "hi"))
	assert.Equal(t, http.StatusBadRequest, send(ts.admin, ana.ID, "  "))
	assert.Equal(t, http.StatusBadRequest, send(ts.admin, "", "hi"))

	notes := ts.notifications(t, anaToken)
	require.Len(t, notes, 1)
	assert.Equal(t, "Please bring Rex's vaccination card.", notes[0].Message)
	assert.Empty(t, ts.notifications(t, borToken))

	assert.Equal(t, http.StatusNotFound,
		ts.do(t, http.MethodPut, "/api/notifications/"+notes[0].ID+"/read", borToken, nil, nil),
		"only the recipient can mark a notification read")
	assert.Equal(t, model.NotificationUnread, ts.notifications(t, anaToken)[0].State)

	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPut, "/api/notifications/"+notes[0].ID+"/read", anaToken, nil, nil))
	assert.Equal(t, model.NotificationRead, ts.notifications(t, anaToken)[0].State)
}

func TestUnauthenticated(t *testing.T) {
	ts := setupTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/api/animals", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/api/animals", "garbage", nil, nil))
}

func TestLogoutRevokesToken(t *testing.T) {
	ts := setupTestServer(t)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/auth/logout", ts.admin, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/api/me", ts.admin, nil, nil))

	fresh := ts.login(t, adminEmail, "admin")
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/me", fresh, nil, nil))
}

func TestRoleChecks(t *testing.T) {
	ts := setupTestServer(t)
	ts.createUser(t, model.User{Name: "Ana", Email: "ana@x.si", Role: model.RolePerson})
	ana := ts.login(t, "ana@x.si", "Person")

	assert.Equal(t, http.StatusForbidden,
		ts.do(t, http.MethodPost, "/api/animals", ana, model.Animal{Specifications: "Tabby cat"}, nil))
	assert.Equal(t, http.StatusForbidden,
		ts.do(t, http.MethodPost, "/api/users", ana, model.User{Name: "X", Email: "x@x.si", Role: model.RolePerson}, nil))
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/animals", ana, nil, nil))
}

func TestUserManagement(t *testing.T) {
	ts := setupTestServer(t)

	bor := ts.createUser(t, model.User{
		Name: "Bor", Email: "bor@x.si", Role: model.RoleVolunteer,
		Volunteer: &model.VolunteerDetails{Availability: "weekends"},
	})
	assert.Equal(t, http.StatusConflict,
		ts.do(t, http.MethodPost, "/api/users", ts.admin, model.User{Name: "Dup", Email: "BOR@x.si", Role: model.RolePerson}, nil))
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPost, "/api/users", ts.admin, model.User{Name: "Nina", Email: "nina@x.si", Role: model.RoleNGO}, nil))

	var volunteers []model.User
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/volunteers", ts.admin, nil, &volunteers))
	require.Len(t, volunteers, 1)
	assert.Equal(t, "weekends", volunteers[0].Volunteer.Availability)

	bor.Contact = "041 123 456"
	var updated model.User
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPut, "/api/users/"+bor.ID, ts.admin, bor, &updated))
	assert.Equal(t, "041 123 456", updated.Contact)

	var admins []model.User
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/users?role=admin", ts.admin, nil, &admins))
	require.Len(t, admins, 1)
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodDelete, "/api/users/"+admins[0].ID, ts.admin, nil, nil))

	require.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/api/users/"+bor.ID, ts.admin, nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/users/"+bor.ID, ts.admin, nil, nil))
}

func TestAdoptionFlow(t *testing.T) {
	ts := setupTestServer(t)

	ana := ts.createUser(t, model.User{Name: "Ana", Email: "ana@x.si", Contact: "ana@x.si", Role: model.RolePerson})
	anaToken := ts.login(t, "ana@x.si", "Person")
	rex := ts.createAnimal(t, "Rex, mixed breed, 3y")
	assert.Equal(t, model.AnimalAvailable, rex.Status)

	var req model.AdoptionRequest
	require.Equal(t, http.StatusCreated,
		ts.do(t, http.MethodPost, "/api/adoptions", anaToken, adoptionRequest{AnimalID: rex.ID}, &req))
	assert.Equal(t, model.AdoptionPending, req.Status)
	assert.Equal(t, ana.ID, req.RequesterID)
	assert.Equal(t, "Ana", req.RequesterName)

	ts.createUser(t, model.User{Name: "Bor", Email: "bor@x.si", Role: model.RolePerson})
	var rival model.AdoptionRequest
	require.Equal(t, http.StatusCreated,
		ts.do(t, http.MethodPost, "/api/adoptions", ts.login(t, "bor@x.si", "Person"), adoptionRequest{AnimalID: rex.ID}, &rival))

	assert.Equal(t, http.StatusForbidden,
		ts.do(t, http.MethodPost, "/api/adoptions/"+req.ID+"/decision", anaToken, map[string]bool{"approve": true}, nil))
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPost, "/api/adoptions/"+req.ID+"/decision", ts.admin, map[string]string{}, nil))

	var res rescue.DecisionResult
	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPost, "/api/adoptions/"+req.ID+"/decision", ts.admin, map[string]bool{"approve": true}, &res))
	assert.Equal(t, model.AdoptionApproved, res.Request.Status)
	assert.True(t, res.AnimalAdopted)

	var animal model.Animal
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/animals/"+rex.ID, anaToken, nil, &animal))
	assert.Equal(t, model.AnimalAdopted, animal.Status)

	assert.Equal(t, http.StatusConflict,
		ts.do(t, http.MethodPost, "/api/adoptions/"+req.ID+"/decision", ts.admin, map[string]bool{"approve": false}, nil))
	assert.Equal(t, http.StatusConflict,
		ts.do(t, http.MethodPost, "/api/adoptions/"+rival.ID+"/decision", ts.admin, map[string]bool{"approve": true}, nil),
		"an adopted animal cannot be adopted twice")
	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPost, "/api/adoptions/"+rival.ID+"/decision", ts.admin, map[string]bool{"approve": false}, nil))
	assert.Equal(t, http.StatusNotFound,
		ts.do(t, http.MethodPost, "/api/adoptions/missing/decision", ts.admin, map[string]bool{"approve": true}, nil))
	assert.Equal(t, http.StatusConflict,
		ts.do(t, http.MethodPost, "/api/adoptions", anaToken, adoptionRequest{AnimalID: rex.ID}, nil),
		"adopted animals take no new requests")

	require.Eventually(t, func() bool {
		return len(ts.notifications(t, anaToken)) == 1
	}, 2*time.Second, 10*time.Millisecond)
	note := ts.notifications(t, anaToken)[0]
	assert.Equal(t, "Your adoption request for animal ID "+rex.ID+" has been Approved.", note.Message)
	assert.Equal(t, model.NotificationUnread, note.State)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPut, "/api/notifications/"+note.ID+"/read", anaToken, nil, nil))
	assert.Equal(t, model.NotificationRead, ts.notifications(t, anaToken)[0].State)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPut, "/api/notifications/missing/read", anaToken, nil, nil))

	var pending []model.AdoptionRequest
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/adoptions?status=pending", ts.admin, nil, &pending))
	assert.Empty(t, pending)
}

func TestReportToTaskFlow(t *testing.T) {
	ts := setupTestServer(t)

	ts.createUser(t, model.User{Name: "Tačke", Email: "ngo@x.si", Role: model.RoleNGO, NGO: &model.NGODetails{OrgName: "Tačke"}})
	bor := ts.createUser(t, model.User{Name: "Bor", Email: "bor@x.si", Role: model.RoleVolunteer, Volunteer: &model.VolunteerDetails{}})
	ts.createUser(t, model.User{Name: "Ana", Email: "ana@x.si", Role: model.RolePerson})
	ngo := ts.login(t, "ngo@x.si", "NGO")
	ana := ts.login(t, "ana@x.si", "Person")
	borToken := ts.login(t, "bor@x.si", "Volunteer")

	var report model.Report
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/reports", ana,
		model.Report{Description: "Limping dog near the bridge", Location: "Ljubljana", Urgency: "high", Status: model.ReportResolved},
		&report))
	assert.Equal(t, model.ReportOpen, report.Status)
	assert.Equal(t, model.UrgencyHigh, report.Urgency)

	require.Eventually(t, func() bool {
		return len(ts.notifications(t, ngo)) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "New stray animal report: Limping dog near the bridge...", ts.notifications(t, ngo)[0].Message)

	var task model.Task
	require.Equal(t, http.StatusCreated,
		ts.do(t, http.MethodPost, "/api/reports/"+report.ID+"/tasks", ngo, reportTaskRequest{}, &task))
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, bor.ID, *task.AssigneeID)
	assert.Equal(t, "Task from report: Limping dog near the bridge at Ljubljana", task.Description)

	var got model.Report
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/reports/"+report.ID, ana, nil, &got))
	assert.Equal(t, model.ReportAssigned, got.Status)

	var mine []model.Task
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/tasks?assignee="+bor.ID, borToken, nil, &mine))
	require.Len(t, mine, 1)

	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPut, "/api/tasks/"+task.ID+"/status", borToken, statusRequest{Status: "done"}, nil))
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPut, "/api/tasks/"+task.ID+"/status", borToken, statusRequest{Status: "paused"}, nil))

	var unassigned model.Task
	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPut, "/api/tasks/"+task.ID+"/assignee", ts.admin, assignRequest{}, &unassigned))
	assert.Nil(t, unassigned.AssigneeID)

	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPut, "/api/reports/"+report.ID+"/status", ngo, statusRequest{Status: "Investigating"}, &got))
	assert.Equal(t, model.ReportInProgress, got.Status)
}

func TestAnimalLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	rex := ts.createAnimal(t, "Rex")

	var animal model.Animal
	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPut, "/api/animals/"+rex.ID+"/status", ts.admin, statusRequest{Status: "in treatment"}, &animal))
	assert.Equal(t, model.AnimalInTreatment, animal.Status)
	assert.Equal(t, http.StatusBadRequest,
		ts.do(t, http.MethodPut, "/api/animals/"+rex.ID+"/status", ts.admin, statusRequest{Status: "Lost"}, nil))

	var injured []model.Animal
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/animals?status=injured", ts.admin, nil, &injured))
	assert.Empty(t, injured)

	rex.MedicalReport = "Vaccinated"
	rex.Status = model.AnimalRescued
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPut, "/api/animals/"+rex.ID, ts.admin, rex, &animal))
	assert.Equal(t, "Vaccinated", animal.MedicalReport)

	require.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/api/animals/"+rex.ID, ts.admin, nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/animals/"+rex.ID, ts.admin, nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodDelete, "/api/animals/"+rex.ID, ts.admin, nil, nil))
}

func TestAnimalPhotoUpload(t *testing.T) {
	ts := setupTestServer(t)
	rex := ts.createAnimal(t, "Rex")

	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for x := 0; x < 64; x++ {
		img.Set(x, 10, color.RGBA{R: 200, A: 255})
	}
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	part, err := mw.CreateFormFile("photo", "rex.png")
	require.NoError(t, err)
	_, err = part.Write(pngBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/animals/"+rex.ID+"/photo", &form)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+ts.admin)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	var animal model.Animal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&animal))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, rescue.PhotoURL(rex.ID), animal.PhotoURL)

	req, err = http.NewRequest(http.MethodGet, ts.URL+animal.PhotoURL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+ts.admin)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))

	other := ts.createAnimal(t, "Mica")
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/animals/"+other.ID+"/photo", ts.admin, nil, nil))
}

func TestHealthAndMetrics(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "zavetisce_notification_queue_depth")
}

func TestStoreUnavailable(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, ts.db.Close())

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	assert.Equal(t, http.StatusServiceUnavailable, ts.do(t, http.MethodGet, "/api/animals", ts.admin, nil, nil))
}
