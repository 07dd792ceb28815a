package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/trezcool/mahudhurio/core/course"
	"github.com/trezcool/mahudhurio/core/session"
	"github.com/trezcool/mahudhurio/core/user"
)

func Test_courseApi_create(t *testing.T) {
	app := setup(t)

	instructor := createUser(t, "Jane Doe", "jane@test.cd", "", user.RoleInstructor, true)
	token := getToken(t, instructor)

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "required fields", token: token, wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"name": "this field is required", "instructor_id": "this field is required"}),
		},
		{
			name: "unknown instructor", token: token, wantCode: http.StatusBadRequest,
			body:     marchallObj(t, course.NewCourse{Name: "Mathematics", InstructorID: 666}),
			wantData: marchallObj(t, map[string]string{"instructor_id": "instructor not found"}),
		},
		{
			name: "create ok", token: token, wantCode: http.StatusCreated,
			body: marchallObj(t, course.NewCourse{Name: "Mathematics", InstructorID: instructor.ID}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/courses"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var respData course.Course
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if respData.ID == 0 {
					t.Error("failed! no ID assigned")
				}
				if respData.Name != "Mathematics" {
					t.Errorf("failed! name = %v; want Mathematics", respData.Name)
				}
				if respData.InstructorID != instructor.ID {
					t.Errorf("failed! instructorID = %v; want %v", respData.InstructorID, instructor.ID)
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_courseApi_query(t *testing.T) {
	app := setup(t)

	instructor := createUser(t, "Jane Doe", "jane@test.cd", "", user.RoleInstructor, true)
	maths := createCourse(t, "Mathematics", instructor.ID)
	physics := createCourse(t, "Physics", instructor.ID)

	// the course list is public; no token needed
	tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t, maths, physics)}
	req, rec := newRequest(http.MethodGet, "/courses")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func Test_courseApi_destroy(t *testing.T) {
	app := setup(t)

	instructor := createUser(t, "Jane Doe", "jane@test.cd", "", user.RoleInstructor, true)
	token := getToken(t, instructor)
	maths := createCourse(t, "Mathematics", instructor.ID)
	sess := createSession(t, maths.ID, session.TypeEntry)

	// deleting needs auth
	req, rec := newRequest(http.MethodDelete, "/courses/1")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)

	// unknown course
	req, rec = newAuthRequest(http.MethodDelete, "/courses/666", token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}, rec)

	// deleting a course cascades to its sessions
	req, rec = newAuthRequest(http.MethodDelete, "/courses/1", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
	}
	if _, err := crsSvc.GetByID(maths.ID); err != course.ErrNotFound {
		t.Errorf("GetByID() err = %v; want %v", err, course.ErrNotFound)
	}
	if _, err := sessSvc.GetByID(sess.ID); err != session.ErrNotFound {
		t.Errorf("GetByID() err = %v; want %v", err, session.ErrNotFound)
	}
}
