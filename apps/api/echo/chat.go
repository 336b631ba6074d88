package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vruksha/portal/core"
)

type (
	ChatMessageRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatMessageResponse struct {
		Reply   string `json:"reply"`
		DelayMS int64  `json:"delay_ms"` // UI hint: wait this long before showing the reply
	}

	ChatGreetingResponse struct {
		Greeting       string   `json:"greeting"`
		QuickQuestions []string `json:"quick_questions"`
	}

	chatApi struct {
		deps ServerDeps
	}
)

func registerChatAPI(g *echo.Group, deps ServerDeps) {
	api := chatApi{deps: deps}

	cg := g.Group("/chat")
	cg.GET("/greeting", api.greeting)
	cg.POST("/messages", api.message)
}

// Handlers

func (api *chatApi) greeting(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ChatGreetingResponse{
		Greeting:       api.deps.ChatSvc.Greeting(),
		QuickQuestions: api.deps.ChatSvc.QuickQuestions(),
	})
}

func (api *chatApi) message(ctx echo.Context) error {
	var data ChatMessageRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChatMessageRequest")
	}
	data.Message = core.CleanString(data.Message)
	if err := api.deps.Validate.Struct(&data); err != nil {
		return err
	}

	reply := api.deps.ChatSvc.Reply(data.Message)
	return ctx.JSON(http.StatusOK, ChatMessageResponse{
		Reply:   reply.Text,
		DelayMS: reply.Delay.Milliseconds(),
	})
}
