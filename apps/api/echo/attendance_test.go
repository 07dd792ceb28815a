package echoapi

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/trezcool/mahudhurio/core/attendance"
	"github.com/trezcool/mahudhurio/core/course"
	"github.com/trezcool/mahudhurio/core/session"
	"github.com/trezcool/mahudhurio/core/user"
)

func Test_attendanceApi_submit(t *testing.T) {
	app := setup(t)

	instructor := createUser(t, "Jane Doe", "jane@test.cd", "", user.RoleInstructor, true)
	maths := createCourse(t, "Mathematics", instructor.ID)
	sess := createSession(t, maths.ID, session.TypeEntry)

	submit := func(token, name, surname string) []byte {
		return marchallObj(t, attendance.SubmitAttendance{Token: token, Name: name, Surname: surname})
	}

	tests := []httpTest{
		{
			name: "required fields", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"token": "this field is required", "name": "this field is required", "surname": "this field is required",
			}),
		},
		{
			name: "unknown token", wantCode: http.StatusNotFound,
			body:     submit("ceci-nest-pas-un-token", "Ali", "Veli"),
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name: "submit ok", wantCode: http.StatusCreated,
			body: submit(sess.QRToken, "Ali", "Veli"),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/attend"

		t.Run(tt.name, func(t *testing.T) {
			// submissions are anonymous; no token needed
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var respData attendance.Attendance
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if respData.SessionID != sess.ID {
					t.Errorf("failed! sessionID = %v; want %v", respData.SessionID, sess.ID)
				}
				if respData.Name != "Ali" || respData.Surname != "Veli" {
					t.Errorf("failed! recorded %v %v; want Ali Veli", respData.Name, respData.Surname)
				}
				if respData.Timestamp.IsZero() {
					t.Error("failed! timestamp not set")
				}
				if respData.IP == "" {
					t.Error("failed! IP not recorded")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}

	// an unknown token must not leave a row behind
	attendances, err := attSvc.QueryBySession(sess.ID)
	if err != nil {
		t.Fatalf("QueryBySession() failed: %v", err)
	}
	if len(attendances) != 1 {
		t.Errorf("failed! %d rows recorded; want 1", len(attendances))
	}
}

func Test_attendanceApi_duplicateSubmissions(t *testing.T) {
	app := setup(t)

	instructor := createUser(t, "Jane Doe", "jane@test.cd", "", user.RoleInstructor, true)
	maths := createCourse(t, "Mathematics", instructor.ID)
	sess := createSession(t, maths.ID, session.TypeEntry)

	body := marchallObj(t, attendance.SubmitAttendance{Token: sess.QRToken, Name: "Ali", Surname: "Veli"})
	for i := 0; i < 2; i++ {
		req, rec := newRequest(http.MethodPost, "/attend", body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusCreated)
		}
	}

	// duplicates are kept as separate rows
	attendances, err := attSvc.QueryBySession(sess.ID)
	if err != nil {
		t.Fatalf("QueryBySession() failed: %v", err)
	}
	if len(attendances) != 2 {
		t.Fatalf("failed! %d rows recorded; want 2", len(attendances))
	}
	if attendances[0].ID == attendances[1].ID {
		t.Error("failed! duplicate rows share an ID")
	}
}

func Test_attendanceApi_queryBySession(t *testing.T) {
	app := setup(t)

	instructor := createUser(t, "Jane Doe", "jane@test.cd", "", user.RoleInstructor, true)
	token := getToken(t, instructor)
	maths := createCourse(t, "Mathematics", instructor.ID)
	sess := createSession(t, maths.ID, session.TypeEntry)
	empty := createSession(t, maths.ID, session.TypeExit)

	ali, err := attSvc.Submit(attendance.SubmitAttendance{Token: sess.QRToken, Name: "Ali", Surname: "Veli", IP: "1.2.3.4"})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	zehra, err := attSvc.Submit(attendance.SubmitAttendance{Token: sess.QRToken, Name: "Zehra", Surname: "Kaya", IP: "1.2.3.5"})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	tests := []httpTest{
		{name: "Auth required", path: "/sessions/1/attendances", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Get all", path: "/sessions/1/attendances", token: token, wantCode: http.StatusOK,
			wantData: marchallList(t, ali, zehra),
		},
		{
			name: "no attendances", path: fmt.Sprintf("/sessions/%d/attendances", empty.ID), token: token,
			wantCode: http.StatusOK, wantData: marchallList(t),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_exportCSV(t *testing.T) {
	app := setup(t)

	instructor := createUser(t, "Jane Doe", "jane@test.cd", "", user.RoleInstructor, true)
	token := getToken(t, instructor)
	maths := createCourse(t, "Mathematics", instructor.ID)
	sess := createSession(t, maths.ID, session.TypeEntry)

	ali, err := attSvc.Submit(attendance.SubmitAttendance{Token: sess.QRToken, Name: "Ali", Surname: "Veli", IP: "1.2.3.4"})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	req, rec := newRequest(http.MethodGet, "/sessions/1/attendances.csv")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusUnauthorized)
	}

	req, rec = newAuthRequest(http.MethodGet, "/sessions/1/attendances.csv", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("failed! Content-Type = %v; want text/csv", ct)
	}

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("failed! %d CSV lines; want 2", len(records))
	}
	wantHeader := strings.Join(csvHeader, ",")
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("failed! header = %v; want %v", got, wantHeader)
	}
	if got := records[1][0]; got != strconv.Itoa(ali.ID) {
		t.Errorf("failed! id = %v; want %v", got, ali.ID)
	}
	if got := records[1][2]; got != "Ali" {
		t.Errorf("failed! name = %v; want Ali", got)
	}
	if got := records[1][5]; got != "1.2.3.4" {
		t.Errorf("failed! ip = %v; want 1.2.3.4", got)
	}
}

func Test_attendanceApi_endToEnd(t *testing.T) {
	app := setup(t)

	createUser(t, "Jane Doe", "jane@test.cd", "Str0ng#Pass1", user.RoleInstructor, true)

	// instructor logs in
	req, rec := newRequest(http.MethodPost, "/auth/login", marchallObj(t, LoginRequest{Email: "jane@test.cd", Password: "Str0ng#Pass1"}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed! code = %v", rec.Code)
	}
	var login LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}

	// creates a course
	req, rec = newAuthRequest(http.MethodPost, "/courses", login.Token, marchallObj(t, course.NewCourse{Name: "Mathematics", InstructorID: login.User.ID}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("course creation failed! code = %v; body = %v", rec.Code, rec.Body.String())
	}
	var crs course.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &crs); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}

	// schedules an entry session
	req, rec = newAuthRequest(http.MethodPost, "/sessions", login.Token, marchallObj(t, map[string]interface{}{
		"course_id":  crs.ID,
		"date":       "2026-09-01T00:00:00Z",
		"time_start": "08:00",
		"time_end":   "10:00",
		"type":       session.TypeEntry,
	}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("session creation failed! code = %v; body = %v", rec.Code, rec.Body.String())
	}
	var sess session.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}

	// a student scans the QR code and checks in
	req, rec = newRequest(http.MethodPost, "/attend", marchallObj(t, attendance.SubmitAttendance{Token: sess.QRToken, Name: "Ali", Surname: "Veli"}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("attendance submission failed! code = %v; body = %v", rec.Code, rec.Body.String())
	}

	// the instructor sees exactly one record
	req, rec = newAuthRequest(http.MethodGet, fmt.Sprintf("/sessions/%d/attendances", sess.ID), login.Token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("attendance listing failed! code = %v", rec.Code)
	}
	var attendances []attendance.Attendance
	if err := json.Unmarshal(rec.Body.Bytes(), &attendances); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if len(attendances) != 1 {
		t.Fatalf("failed! %d records; want 1", len(attendances))
	}
	if attendances[0].Name != "Ali" || attendances[0].Surname != "Veli" {
		t.Errorf("failed! recorded %v %v; want Ali Veli", attendances[0].Name, attendances[0].Surname)
	}
}
