package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vruksha/portal/core/teacher"
)

type (
	LoginResponse struct {
		Token   string          `json:"token"`
		Teacher teacher.Teacher `json:"teacher"`
	}

	teacherApi struct {
		deps ServerDeps
	}
)

func registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := teacherApi{deps: deps}

	tg := g.Group("/teachers")

	// un-authed endpoints
	tg.POST("/register", api.register)
	tg.POST("/login", api.login)

	// authed endpoints
	ag := tg.Group("", jwt, sessionMiddleware(deps.Store))
	ag.POST("/logout", api.logout)
	ag.GET("/me", api.me)
}

// Handlers

func (api *teacherApi) register(ctx echo.Context) error {
	var data teacher.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator, api.deps.Store.TeacherSvc()); err != nil {
		return err
	}

	// registration does not establish a session
	t, err := api.deps.Store.Register(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *teacherApi) login(ctx echo.Context) error {
	var data teacher.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	t, err := api.deps.Store.Login(data.Email, data.Password)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.deps.Conf, GetTeacherClaims(api.deps.Conf, t))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Teacher: t})
}

func (api *teacherApi) logout(ctx echo.Context) error {
	if err := api.deps.Store.Logout(); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *teacherApi) me(ctx echo.Context) error {
	t, ok := api.deps.Store.Current()
	if !ok {
		return errUnauthorized
	}
	return ctx.JSON(http.StatusOK, t)
}
