package app

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/loanapp/internal/config"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

type ApplicationSuite struct {
	suite.Suite
	app  *Application
	logs *observer.ObservedLogs
	undo func()
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()

	core, logs := observer.New(zapcore.InfoLevel)
	s.logs = logs
	s.undo = zap.ReplaceGlobals(zap.New(core))
}

func (s *ApplicationSuite) TearDownTest() {
	s.undo()
}

func (s *ApplicationSuite) withGroup(ctx context.Context) {
	s.app.group, s.app.groupCtx = errgroup.WithContext(ctx)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())
	s.withGroup(ctx)

	s.app.group.Go(func() error {
		return fmt.Errorf("mock error")
	})

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
	s.ErrorIs(ctx.Err(), context.Canceled)
}

func (s *ApplicationSuite) TestWait_ConsoleFinished() {
	ctx, cancel := context.WithCancel(context.Background())
	s.withGroup(ctx)

	s.app.done <- nil

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
	s.ErrorIs(ctx.Err(), context.Canceled)
}

func (s *ApplicationSuite) TestWait_ConsoleFailed() {
	ctx, cancel := context.WithCancel(context.Background())
	s.withGroup(ctx)

	s.app.done <- fmt.Errorf("mock error")

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "console exited with error: mock error")
}

func (s *ApplicationSuite) TestStart_ConsoleMode() {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	s.app.in = strings.NewReader("200000\n400000\n900\np\nx\n")
	s.app.out = &out

	cfg := &config.Config{Mode: config.ModeConsole}
	s.Require().NoError(s.app.start(ctx, cfg))
	s.True(s.app.ready)
	s.Nil(s.app.api)

	s.NoError(s.app.Wait(ctx, cancel))
	s.Contains(out.String(), "Your loan application was Approved")
	s.Contains(out.String(), "Finished")

	records, err := s.app.srv.ApplicationService.Applications(context.Background())
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *ApplicationSuite) TestStart_HTTPMode() {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := &config.Config{Mode: config.ModeHTTP, Address: "127.0.0.1:0", ReportInterval: time.Hour}
	s.Require().NoError(s.app.start(ctx, cfg))
	s.NotNil(s.app.api)

	time.AfterFunc(50*time.Millisecond, cancel)
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestWait_StopsReporter() {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := &config.Config{Mode: config.ModeHTTP, Address: "127.0.0.1:0", ReportInterval: time.Hour}
	s.Require().NoError(s.app.start(ctx, cfg))

	time.AfterFunc(50*time.Millisecond, cancel)
	s.Require().NoError(s.app.Wait(ctx, cancel))

	s.Equal(1, s.logs.FilterMessage("Context canceled, stopping reporter").Len())
}

func (s *ApplicationSuite) TestWait_HTTPServerFailure() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.Config{Mode: config.ModeHTTP, Address: "127.0.0.1:-1", ReportInterval: time.Hour}
	s.Require().NoError(s.app.start(ctx, cfg))

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "http server exited with error")
	s.Equal(1, s.logs.FilterMessage("Context canceled, stopping reporter").Len())
}
