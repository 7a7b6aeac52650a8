package mocks

import (
	domain "github.com/mouse-blink/lox/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// MockWorkflow_Expecter wraps the mock with typed expectation helpers.
type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helpers.
func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Eval provides a mock function with given fields: args.
func (_m *MockWorkflow) Eval(args domain.InputArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

// MockWorkflow_Eval_Call is the expectation of a Eval call.
type MockWorkflow_Eval_Call struct {
	*mock.Call
}

// Eval is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Eval(args interface{}) *MockWorkflow_Eval_Call {
	return &MockWorkflow_Eval_Call{Call: _e.mock.On("Eval", args)}
}

// Return sets the values returned by the call.
func (_c *MockWorkflow_Eval_Call) Return(err error) *MockWorkflow_Eval_Call {
	_c.Call.Return(err)
	return _c
}

// Run provides a mock function with given fields: args.
func (_m *MockWorkflow) Run(args domain.RunArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

// MockWorkflow_Run_Call is the expectation of a Run call.
type MockWorkflow_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Run(args interface{}) *MockWorkflow_Run_Call {
	return &MockWorkflow_Run_Call{Call: _e.mock.On("Run", args)}
}

// Return sets the values returned by the call.
func (_c *MockWorkflow_Run_Call) Return(err error) *MockWorkflow_Run_Call {
	_c.Call.Return(err)
	return _c
}

// Tokens provides a mock function with given fields: args.
func (_m *MockWorkflow) Tokens(args domain.InputArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

// MockWorkflow_Tokens_Call is the expectation of a Tokens call.
type MockWorkflow_Tokens_Call struct {
	*mock.Call
}

// Tokens is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Tokens(args interface{}) *MockWorkflow_Tokens_Call {
	return &MockWorkflow_Tokens_Call{Call: _e.mock.On("Tokens", args)}
}

// Return sets the values returned by the call.
func (_c *MockWorkflow_Tokens_Call) Return(err error) *MockWorkflow_Tokens_Call {
	_c.Call.Return(err)
	return _c
}

// Parse provides a mock function with given fields: args.
func (_m *MockWorkflow) Parse(args domain.InputArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

// MockWorkflow_Parse_Call is the expectation of a Parse call.
type MockWorkflow_Parse_Call struct {
	*mock.Call
}

// Parse is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Parse(args interface{}) *MockWorkflow_Parse_Call {
	return &MockWorkflow_Parse_Call{Call: _e.mock.On("Parse", args)}
}

// Return sets the values returned by the call.
func (_c *MockWorkflow_Parse_Call) Return(err error) *MockWorkflow_Parse_Call {
	_c.Call.Return(err)
	return _c
}

// Repl provides a mock function with given fields: args.
func (_m *MockWorkflow) Repl(args domain.ReplArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

// MockWorkflow_Repl_Call is the expectation of a Repl call.
type MockWorkflow_Repl_Call struct {
	*mock.Call
}

// Repl is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Repl(args interface{}) *MockWorkflow_Repl_Call {
	return &MockWorkflow_Repl_Call{Call: _e.mock.On("Repl", args)}
}

// Return sets the values returned by the call.
func (_c *MockWorkflow_Repl_Call) Return(err error) *MockWorkflow_Repl_Call {
	_c.Call.Return(err)
	return _c
}

// View provides a mock function with given fields: args.
func (_m *MockWorkflow) View(args domain.ViewArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

// MockWorkflow_View_Call is the expectation of a View call.
type MockWorkflow_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) View(args interface{}) *MockWorkflow_View_Call {
	return &MockWorkflow_View_Call{Call: _e.mock.On("View", args)}
}

// Return sets the values returned by the call.
func (_c *MockWorkflow_View_Call) Return(err error) *MockWorkflow_View_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a
// cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
