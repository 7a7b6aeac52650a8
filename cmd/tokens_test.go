package cmd

import (
	"testing"

	"github.com/mouse-blink/lox/internal/domain"
	m "github.com/mouse-blink/lox/internal/model"
	"github.com/stretchr/testify/require"
)

func TestTokensCmd(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		mockWorkflow.On("Tokens", domain.InputArgs{Path: m.Path("a.lox")}).Return(nil)

		cmd := newTestRootCmd(newTokensCmd())
		cmd.SetArgs([]string{"tokens", "a.lox"})

		require.NoError(t, cmd.Execute())
	})

	t.Run("expression", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		mockWorkflow.On("Tokens", domain.InputArgs{HasExpr: true, Expr: "1 + 2"}).Return(nil)

		cmd := newTestRootCmd(newTokensCmd())
		cmd.SetArgs([]string{"tokens", "-e", "1 + 2"})

		require.NoError(t, cmd.Execute())
	})

	t.Run("empty expression", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		mockWorkflow.On("Tokens", domain.InputArgs{HasExpr: true}).Return(nil)

		cmd := newTestRootCmd(newTokensCmd())
		cmd.SetArgs([]string{"tokens", "-e", ""})

		require.NoError(t, cmd.Execute())
	})

	t.Run("missing input", func(t *testing.T) {
		useMockWorkflow(t)

		cmd := newTestRootCmd(newTokensCmd())
		cmd.SetArgs([]string{"tokens"})

		require.Error(t, cmd.Execute())
	})

	t.Run("lexical error", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		mockWorkflow.On("Tokens", domain.InputArgs{HasExpr: true, Expr: "@"}).
			Return(&domain.EvaluationError{Kind: m.DiagnosisLexing})

		cmd := newTestRootCmd(newTokensCmd())
		cmd.SetArgs([]string{"tokens", "-e", "@"})

		require.ErrorIs(t, cmd.Execute(), domain.ErrEvaluationFailed)
	})
}
