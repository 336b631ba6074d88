package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	echoapi "github.com/vruksha/portal/apps/api/echo"
	"github.com/vruksha/portal/core/teacher"
	testutil "github.com/vruksha/portal/tests"
)

func Test_teacherApi_register(t *testing.T) {
	app := setup(t)
	existing := testutil.CreateTeacher(t, app.teacherRepo, "Ben Oko", "ben@school.test", "+243 81 000 0000", "KINSHASA-05", "s3cret!")

	payload := func(name, email, phone, org, pwd, pwdConfirm string) []byte {
		return marchallObj(t, echo.Map{
			"name": name, "email": email, "phone": phone,
			"organization_code": org, "password": pwd, "password_confirm": pwdConfirm,
		})
	}

	tests := []httpTest{
		{
			name: "empty payload", body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{
				"name": "this field is required", "email": "this field is required",
				"phone": "this field is required", "organization_code": "this field is required",
				"password": "this field is required", "password_confirm": "this field is required",
			}),
		},
		{
			name: "invalid email", body: payload("Asha Rao", "not-an-email", "+91 98765 43210", "SPRINGFIELD-01", "s3cret!", "s3cret!"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"email": "email must be a valid email address"}),
		},
		{
			name: "invalid organization code", body: payload("Asha Rao", "asha@school.test", "+91 98765 43210", "!!bad!!", "s3cret!", "s3cret!"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"organization_code": "invalid organization code"}),
		},
		{
			name: "duplicate email", body: payload("Imposter", existing.Email, "+243 81 111 1111", "KINSHASA-05", "other-pwd", "other-pwd"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"email": teacher.ErrEmailExists.Error()}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/teachers/register"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("short password", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/teachers/register",
			payload("Asha Rao", "asha@school.test", "+91 98765 43210", "SPRINGFIELD-01", "abc", "abc"))
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("code = %v; want 400", rec.Code)
		}
		var fldErrs map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &fldErrs); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		if _, ok := fldErrs["password"]; !ok {
			t.Errorf("no password error in %v", fldErrs)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/teachers/register",
			payload("Asha Rao", "asha@school.test", "+91 98765 43210", "SPRINGFIELD-01", "s3cret!", "different"))
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("code = %v; want 400", rec.Code)
		}
		var fldErrs map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &fldErrs); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		if _, ok := fldErrs["password_confirm"]; !ok {
			t.Errorf("no password_confirm error in %v", fldErrs)
		}
	})

	t.Run("registered", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/teachers/register",
			payload("Asha Rao", "asha@school.test", "+91 98765 43210", "SPRINGFIELD-01", "s3cret!", "s3cret!"))
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want 201; body %s", rec.Code, rec.Body.String())
		}

		var respData teacher.Teacher
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		if respData.ID == "" {
			t.Error("no ID in response")
		}
		if respData.Email != "asha@school.test" {
			t.Errorf("email = %q, want asha@school.test", respData.Email)
		}
		if strings.Contains(rec.Body.String(), "s3cret!") {
			t.Error("response leaks the password")
		}

		// no session was established
		if _, ok := app.store.Current(); ok {
			t.Error("registration established a session")
		}
	})
}

func Test_teacherApi_login(t *testing.T) {
	app := setup(t)
	tchr := testutil.CreateTeacher(t, app.teacherRepo, "Asha Rao", "asha@school.test", "+91 98765 43210", "SPRINGFIELD-01", "s3cret!")

	creds := func(email, pwd string) []byte {
		return marchallObj(t, echo.Map{"email": email, "password": pwd})
	}
	badCreds := marchallObj(t, httpErr{Error: teacher.ErrInvalidCredentials.Error()})

	tests := []httpTest{
		{
			name: "empty payload", body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"email": "this field is required", "password": "this field is required"}),
		},
		{name: "unknown email", body: creds("nobody@school.test", "s3cret!"), wantCode: http.StatusBadRequest, wantData: badCreds},
		{name: "wrong password", body: creds("asha@school.test", "S3CRET!"), wantCode: http.StatusBadRequest, wantData: badCreds},
		{name: "email is case-sensitive", body: creds("ASHA@school.test", "s3cret!"), wantCode: http.StatusBadRequest, wantData: badCreds},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/teachers/login"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if _, ok := app.store.Current(); ok {
				t.Error("failed login established a session")
			}
		})
	}

	t.Run("logged in", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/teachers/login", creds("asha@school.test", "s3cret!"))
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want 200; body %s", rec.Code, rec.Body.String())
		}

		var respData echoapi.LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		if respData.Token == "" {
			t.Error("no token in response")
		}
		if respData.Teacher.ID != tchr.ID {
			t.Errorf("teacher ID = %q, want %q", respData.Teacher.ID, tchr.ID)
		}
		if strings.Contains(rec.Body.String(), "s3cret!") {
			t.Error("response leaks the password")
		}

		// the token works against an authed endpoint
		req, rec = newAuthRequest(http.MethodGet, "/v1/teachers/me", respData.Token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET /me code = %v; want 200; body %s", rec.Code, rec.Body.String())
		}
	})
}

func Test_teacherApi_me(t *testing.T) {
	app := setup(t)
	tchr := testutil.CreateTeacher(t, app.teacherRepo, "Asha Rao", "asha@school.test", "+91 98765 43210", "SPRINGFIELD-01", "s3cret!")
	other := testutil.CreateTeacher(t, app.teacherRepo, "Ben Oko", "ben@school.test", "+243 81 000 0000", "KINSHASA-05", "s3cret!")

	token := app.login(t, "asha@school.test", "s3cret!")
	sessionExpired := marchallObj(t, httpErr{Error: "session expired"})

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			// a valid token for a teacher who is not the active session
			name: "stale token rejected", token: getToken(t, app.conf, other),
			wantCode: http.StatusUnauthorized, wantData: sessionExpired,
		},
		{name: "current teacher", token: token, wantCode: http.StatusOK, wantData: marchallObj(t, tchr.WithoutPassword())},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.path = "/v1/teachers/me"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_teacherApi_logout(t *testing.T) {
	app := setup(t)
	testutil.CreateTeacher(t, app.teacherRepo, "Asha Rao", "asha@school.test", "+91 98765 43210", "SPRINGFIELD-01", "s3cret!")

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/teachers/logout")
		app.server.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("logged out", func(t *testing.T) {
		token := app.login(t, "asha@school.test", "s3cret!")

		req, rec := newAuthRequest(http.MethodPost, "/v1/teachers/logout", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want 204; body %s", rec.Code, rec.Body.String())
		}
		if _, ok := app.store.Current(); ok {
			t.Error("session still active after logout")
		}

		// the token no longer works
		req, rec = newAuthRequest(http.MethodGet, "/v1/teachers/me", token)
		app.server.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, httpErr{Error: "session expired"})}
		checkCodeAndData(t, tt, rec)
	})
}
