package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitGracefulStop() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}
