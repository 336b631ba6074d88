package teacher

import (
	"github.com/vruksha/portal/core"
)

type serviceMock struct {
	service
}

// NewServiceMock returns a Service without an email backend; welcome emails
// are skipped.
func NewServiceMock(repo Repository, conf *core.Config) Service {
	return &serviceMock{
		service: service{
			repo: repo,
			conf: conf,
		},
	}
}
