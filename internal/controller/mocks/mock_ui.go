package mocks

import (
	controller "github.com/mouse-blink/lox/internal/controller"
	model "github.com/mouse-blink/lox/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// MockUI_Expecter wraps the mock with typed expectation helpers.
type MockUI_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helpers.
func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// DisplayValue provides a mock function with given fields: report.
func (_m *MockUI) DisplayValue(report model.Report) {
	_m.Called(report)
}

// MockUI_DisplayValue_Call is the expectation of a DisplayValue call.
type MockUI_DisplayValue_Call struct {
	*mock.Call
}

// DisplayValue is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayValue(report interface{}) *MockUI_DisplayValue_Call {
	return &MockUI_DisplayValue_Call{Call: _e.mock.On("DisplayValue", report)}
}

// Return sets the values returned by the call.
func (_c *MockUI_DisplayValue_Call) Return() *MockUI_DisplayValue_Call {
	_c.Call.Return()
	return _c
}

// DisplayDiagnosis provides a mock function with given fields: diagnosis.
func (_m *MockUI) DisplayDiagnosis(diagnosis model.Diagnosis) {
	_m.Called(diagnosis)
}

// MockUI_DisplayDiagnosis_Call is the expectation of a DisplayDiagnosis call.
type MockUI_DisplayDiagnosis_Call struct {
	*mock.Call
}

// DisplayDiagnosis is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayDiagnosis(diagnosis interface{}) *MockUI_DisplayDiagnosis_Call {
	return &MockUI_DisplayDiagnosis_Call{Call: _e.mock.On("DisplayDiagnosis", diagnosis)}
}

// Return sets the values returned by the call.
func (_c *MockUI_DisplayDiagnosis_Call) Return() *MockUI_DisplayDiagnosis_Call {
	_c.Call.Return()
	return _c
}

// DisplayTokens provides a mock function with given fields: tokens.
func (_m *MockUI) DisplayTokens(tokens []model.Token) {
	_m.Called(tokens)
}

// MockUI_DisplayTokens_Call is the expectation of a DisplayTokens call.
type MockUI_DisplayTokens_Call struct {
	*mock.Call
}

// DisplayTokens is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayTokens(tokens interface{}) *MockUI_DisplayTokens_Call {
	return &MockUI_DisplayTokens_Call{Call: _e.mock.On("DisplayTokens", tokens)}
}

// Return sets the values returned by the call.
func (_c *MockUI_DisplayTokens_Call) Return() *MockUI_DisplayTokens_Call {
	_c.Call.Return()
	return _c
}

// DisplayTree provides a mock function with given fields: tree.
func (_m *MockUI) DisplayTree(tree string) {
	_m.Called(tree)
}

// MockUI_DisplayTree_Call is the expectation of a DisplayTree call.
type MockUI_DisplayTree_Call struct {
	*mock.Call
}

// DisplayTree is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayTree(tree interface{}) *MockUI_DisplayTree_Call {
	return &MockUI_DisplayTree_Call{Call: _e.mock.On("DisplayTree", tree)}
}

// Return sets the values returned by the call.
func (_c *MockUI_DisplayTree_Call) Return() *MockUI_DisplayTree_Call {
	_c.Call.Return()
	return _c
}

// DisplayReports provides a mock function with given fields: run.
func (_m *MockUI) DisplayReports(run model.Run) error {
	ret := _m.Called(run)
	return ret.Error(0)
}

// MockUI_DisplayReports_Call is the expectation of a DisplayReports call.
type MockUI_DisplayReports_Call struct {
	*mock.Call
}

// DisplayReports is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayReports(run interface{}) *MockUI_DisplayReports_Call {
	return &MockUI_DisplayReports_Call{Call: _e.mock.On("DisplayReports", run)}
}

// Return sets the values returned by the call.
func (_c *MockUI_DisplayReports_Call) Return(err error) *MockUI_DisplayReports_Call {
	_c.Call.Return(err)
	return _c
}

// BrowseReports provides a mock function with given fields: runs.
func (_m *MockUI) BrowseReports(runs []model.Run) error {
	ret := _m.Called(runs)
	return ret.Error(0)
}

// MockUI_BrowseReports_Call is the expectation of a BrowseReports call.
type MockUI_BrowseReports_Call struct {
	*mock.Call
}

// BrowseReports is a helper method to define mock.On call.
func (_e *MockUI_Expecter) BrowseReports(runs interface{}) *MockUI_BrowseReports_Call {
	return &MockUI_BrowseReports_Call{Call: _e.mock.On("BrowseReports", runs)}
}

// Return sets the values returned by the call.
func (_c *MockUI_BrowseReports_Call) Return(err error) *MockUI_BrowseReports_Call {
	_c.Call.Return(err)
	return _c
}

// Repl provides a mock function with given fields: eval, options.
func (_m *MockUI) Repl(eval controller.EvalFunc, options ...controller.ReplOption) error {
	ret := _m.Called(eval, options)
	return ret.Error(0)
}

// MockUI_Repl_Call is the expectation of a Repl call.
type MockUI_Repl_Call struct {
	*mock.Call
}

// Repl is a helper method to define mock.On call.
func (_e *MockUI_Expecter) Repl(eval interface{}, options interface{}) *MockUI_Repl_Call {
	return &MockUI_Repl_Call{Call: _e.mock.On("Repl", eval, options)}
}

// Run sets a handler invoked with the evaluation function of the call.
func (_c *MockUI_Repl_Call) Run(run func(eval controller.EvalFunc)) *MockUI_Repl_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(controller.EvalFunc))
	})

	return _c
}

// Return sets the values returned by the call.
func (_c *MockUI_Repl_Call) Return(err error) *MockUI_Repl_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockUI creates a new instance of MockUI. It also registers a cleanup
// function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	m := &MockUI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
