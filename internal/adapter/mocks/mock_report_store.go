package mocks

import (
	model "github.com/mouse-blink/lox/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockReportStore is a mock type for the ReportStore type.
type MockReportStore struct {
	mock.Mock
}

// MockReportStore_Expecter wraps the mock with typed expectation helpers.
type MockReportStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helpers.
func (_m *MockReportStore) EXPECT() *MockReportStore_Expecter {
	return &MockReportStore_Expecter{mock: &_m.Mock}
}

// SaveReports provides a mock function with given fields: dir, run.
func (_m *MockReportStore) SaveReports(dir model.Path, run model.Run) error {
	ret := _m.Called(dir, run)
	return ret.Error(0)
}

// MockReportStore_SaveReports_Call is the expectation of a SaveReports call.
type MockReportStore_SaveReports_Call struct {
	*mock.Call
}

// SaveReports is a helper method to define mock.On call.
func (_e *MockReportStore_Expecter) SaveReports(dir interface{}, run interface{}) *MockReportStore_SaveReports_Call {
	return &MockReportStore_SaveReports_Call{Call: _e.mock.On("SaveReports", dir, run)}
}

// Return sets the values returned by the call.
func (_c *MockReportStore_SaveReports_Call) Return(err error) *MockReportStore_SaveReports_Call {
	_c.Call.Return(err)
	return _c
}

// LoadReports provides a mock function with given fields: dir.
func (_m *MockReportStore) LoadReports(dir model.Path) ([]model.Run, error) {
	ret := _m.Called(dir)

	var r0 []model.Run
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Run)
	}

	return r0, ret.Error(1)
}

// MockReportStore_LoadReports_Call is the expectation of a LoadReports call.
type MockReportStore_LoadReports_Call struct {
	*mock.Call
}

// LoadReports is a helper method to define mock.On call.
func (_e *MockReportStore_Expecter) LoadReports(dir interface{}) *MockReportStore_LoadReports_Call {
	return &MockReportStore_LoadReports_Call{Call: _e.mock.On("LoadReports", dir)}
}

// Return sets the values returned by the call.
func (_c *MockReportStore_LoadReports_Call) Return(runs []model.Run, err error) *MockReportStore_LoadReports_Call {
	_c.Call.Return(runs, err)
	return _c
}

// RegenerateIndex provides a mock function with given fields: dir.
func (_m *MockReportStore) RegenerateIndex(dir model.Path) error {
	ret := _m.Called(dir)
	return ret.Error(0)
}

// MockReportStore_RegenerateIndex_Call is the expectation of a RegenerateIndex call.
type MockReportStore_RegenerateIndex_Call struct {
	*mock.Call
}

// RegenerateIndex is a helper method to define mock.On call.
func (_e *MockReportStore_Expecter) RegenerateIndex(dir interface{}) *MockReportStore_RegenerateIndex_Call {
	return &MockReportStore_RegenerateIndex_Call{Call: _e.mock.On("RegenerateIndex", dir)}
}

// Return sets the values returned by the call.
func (_c *MockReportStore_RegenerateIndex_Call) Return(err error) *MockReportStore_RegenerateIndex_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockReportStore creates a new instance of MockReportStore. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	m := &MockReportStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
