package cmd

import (
	"testing"

	"github.com/mouse-blink/lox/internal/domain"
	m "github.com/mouse-blink/lox/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".lox-reports")
	})).Return(nil)

	cmd := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil)

	cmd := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"--output", "./reports-dir", "view"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	useMockWorkflow(t)

	cmd := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view", "./custom-reports"})

	require.Error(t, cmd.Execute())
}
