package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/vruksha/portal/apps/api/echo"
	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/core/chat"
	"github.com/vruksha/portal/core/lesson"
	"github.com/vruksha/portal/core/portal"
	"github.com/vruksha/portal/core/teacher"
	inmemdb "github.com/vruksha/portal/storage/inmem"
	testutil "github.com/vruksha/portal/tests"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testApp struct {
	server      Server
	conf        *core.Config
	store       *portal.Store
	teacherRepo teacher.Repository
	lessonRepo  lesson.Repository
}

// setup wires a full API over in-memory repositories. The moderator defaults
// to pass-everything; tests gate submissions by passing their own.
func setup(t *testing.T, moderator ...lesson.Moderator) *testApp {
	t.Helper()

	conf := testutil.NewConfig(t)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	teacherRepo := inmemdb.NewTeacherRepository(db)
	lessonRepo := inmemdb.NewLessonRepository(db)

	var mod lesson.Moderator = lesson.ModeratorFunc(func([]lesson.File) lesson.Verdict {
		return lesson.Verdict{Valid: true}
	})
	if len(moderator) > 0 {
		mod = moderator[0]
	}

	teacherSvc := teacher.NewServiceMock(teacherRepo, conf)
	lessonSvc := lesson.NewService(lessonRepo, mod)
	chatSvc := chat.NewService(conf.AppName, conf.Chat.ReplyDelay)

	store, err := portal.NewStore(teacherSvc, lessonSvc, inmemdb.NewSessionRepository(db))
	if err != nil {
		t.Fatalf("portal.NewStore() failed: %v", err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	teacher.InitValidators(validate, translator)
	lesson.InitValidators(validate, translator)

	server := NewServer(
		ServerDeps{
			Conf:           conf,
			Logger:         nopLogger{},
			Store:          store,
			ChatSvc:        chatSvc,
			Validate:       validate,
			Translator:     translator,
			DisableReqLogs: true,
		},
	)
	return &testApp{
		server:      server,
		conf:        conf,
		store:       store,
		teacherRepo: teacherRepo,
		lessonRepo:  lessonRepo,
	}
}

// login establishes the store session and returns a matching token.
func (app *testApp) login(t *testing.T, email, pwd string) string {
	t.Helper()

	tchr, err := app.store.Login(email, pwd)
	if err != nil {
		t.Fatalf("login(%s) failed: %v", email, err)
	}
	return getToken(t, app.conf, tchr)
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, tchr teacher.Teacher) string {
	token, err := GenerateToken(conf, GetTeacherClaims(conf, tchr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
