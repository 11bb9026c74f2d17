package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"shade/internal/app/cli"
	"shade/internal/config/logger"
)

type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

type recordingShutdowner struct {
	calls int
	err   error
}

func (m *recordingShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	m.calls++
	return m.err
}

func newMockLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug().Return(nil).AnyTimes()

	return mockLogger
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	shutdowner := &recordingShutdowner{}

	application := NewApp(mockCLI, shutdowner, mockLogger)

	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
	assert.NotNil(t, application.done)
}

func Test_execute(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		expected int
	}{
		{name: "success", code: 0, expected: 0},
		{name: "failure", code: 1, err: errors.New("invalid color"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockCLI := cli.NewMockCLI(ctrl)
			mockCLI.EXPECT().Execute().Return(tt.code, tt.err)

			application := NewApp(mockCLI, &recordingShutdowner{}, newMockLogger(ctrl))

			assert.Equal(t, tt.expected, application.execute())
		})
	}
}

func Test_App_Run(t *testing.T) {
	tests := []struct {
		name        string
		shutdownErr error
	}{
		{name: "shuts the container down"},
		{name: "shutdown error is tolerated", shutdownErr: errors.New("already stopping")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockCLI := cli.NewMockCLI(ctrl)
			mockCLI.EXPECT().Execute().Return(0, nil)

			shutdowner := &recordingShutdowner{err: tt.shutdownErr}
			application := NewApp(mockCLI, shutdowner, newMockLogger(ctrl))

			application.Run()

			assert.Equal(t, 1, shutdowner.calls)

			select {
			case <-application.done:
			default:
				t.Fatal("done was not closed")
			}
		})
	}
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockCLI.EXPECT().Execute().Return(0, nil)

	shutdowner := &recordingShutdowner{}
	application := NewApp(mockCLI, shutdowner, newMockLogger(ctrl))

	var hook fx.Hook

	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, application)

	require.NotNil(t, hook.OnStart)
	require.NotNil(t, hook.OnStop)

	require.NoError(t, hook.OnStart(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, hook.OnStop(ctx))
}

func Test_Register_OnStopTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)

	application := NewApp(cli.NewMockCLI(ctrl), &recordingShutdowner{}, logger.NewMockLogger(ctrl))

	var hook fx.Hook

	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, application)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, hook.OnStop(ctx), context.Canceled)
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
