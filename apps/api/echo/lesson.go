package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vruksha/portal/core/lesson"
)

// defaultRecentLimit caps the dashboard's "recent uploads" slice.
const defaultRecentLimit = 3

type (
	// RejectionResponse carries the canned reason; the lesson was still
	// recorded.
	RejectionResponse struct {
		Error  string        `json:"error"`
		Lesson lesson.Lesson `json:"lesson"`
	}

	lessonApi struct {
		deps ServerDeps
	}
)

func registerLessonAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := lessonApi{deps: deps}

	lg := g.Group("/lessons", jwt, sessionMiddleware(deps.Store))
	lg.POST("", api.submit)
	lg.GET("", api.query)
	lg.GET("/stats", api.stats)
	lg.GET("/recent", api.recent)
}

// Handlers

func (api *lessonApi) submit(ctx echo.Context) error {
	var data lesson.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator); err != nil {
		return err
	}

	l, err := api.deps.Store.Submit(data)
	if err != nil {
		if errors.Cause(err) == lesson.ErrRejected {
			return ctx.JSON(http.StatusUnprocessableEntity, RejectionResponse{
				Error:  l.RejectionReason,
				Lesson: l,
			})
		}
		return errors.Wrap(err, "submitting lesson")
	}
	return ctx.JSON(http.StatusCreated, l)
}

func (api *lessonApi) query(ctx echo.Context) error {
	lessons, err := api.deps.Store.Lessons()
	if err != nil {
		return errors.Wrap(err, "querying lessons")
	}
	if lessons == nil {
		lessons = []lesson.Lesson{}
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *lessonApi) stats(ctx echo.Context) error {
	stats, err := api.deps.Store.Stats()
	if err != nil {
		return errors.Wrap(err, "aggregating stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *lessonApi) recent(ctx echo.Context) error {
	limit := defaultRecentLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	lessons, err := api.deps.Store.Recent(limit)
	if err != nil {
		return errors.Wrap(err, "querying recent lessons")
	}
	if lessons == nil {
		lessons = []lesson.Lesson{}
	}
	return ctx.JSON(http.StatusOK, lessons)
}
