package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitExecutor is a mock implementation of GitExecutor for testing.
type MockGitExecutor struct {
	mock.Mock
}

var _ GitExecutor = &MockGitExecutor{} // Compile-time check

// Execute implements the GitExecutor interface.
func (m *MockGitExecutor) Execute(ctx context.Context, workDir string, args ...string) (string, error) {
	calledArgs := []any{ctx, workDir}
	for _, arg := range args {
		calledArgs = append(calledArgs, arg)
	}
	ret := m.Called(calledArgs...)
	return ret.String(0), ret.Error(1)
}
