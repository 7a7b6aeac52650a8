package mocks

import (
	"os"

	adapter "github.com/mouse-blink/lox/internal/adapter"
	model "github.com/mouse-blink/lox/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockSourceFSAdapter is a mock type for the SourceFSAdapter type.
type MockSourceFSAdapter struct {
	mock.Mock
}

// MockSourceFSAdapter_Expecter wraps the mock with typed expectation helpers.
type MockSourceFSAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation helpers.
func (_m *MockSourceFSAdapter) EXPECT() *MockSourceFSAdapter_Expecter {
	return &MockSourceFSAdapter_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: roots, exclude.
func (_m *MockSourceFSAdapter) Get(roots []model.Path, exclude []string) ([]model.Path, error) {
	ret := _m.Called(roots, exclude)

	var r0 []model.Path
	if rf, ok := ret.Get(0).(func([]model.Path, []string) []model.Path); ok {
		r0 = rf(roots, exclude)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Path)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_Get_Call is the expectation of a Get call.
type MockSourceFSAdapter_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) Get(roots interface{}, exclude interface{}) *MockSourceFSAdapter_Get_Call {
	return &MockSourceFSAdapter_Get_Call{Call: _e.mock.On("Get", roots, exclude)}
}

// Return sets the values returned by the call.
func (_c *MockSourceFSAdapter_Get_Call) Return(paths []model.Path, err error) *MockSourceFSAdapter_Get_Call {
	_c.Call.Return(paths, err)
	return _c
}

// Walk provides a mock function with given fields: root, recursive, fn.
func (_m *MockSourceFSAdapter) Walk(root model.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, recursive, fn)
	return ret.Error(0)
}

// ReadFile provides a mock function with given fields: path.
func (_m *MockSourceFSAdapter) ReadFile(path model.Path) ([]byte, error) {
	ret := _m.Called(path)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// ReadSource provides a mock function with given fields: path.
func (_m *MockSourceFSAdapter) ReadSource(path model.Path) (*model.Source, error) {
	ret := _m.Called(path)

	var r0 *model.Source
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Source)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_ReadSource_Call is the expectation of a ReadSource call.
type MockSourceFSAdapter_ReadSource_Call struct {
	*mock.Call
}

// ReadSource is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) ReadSource(path interface{}) *MockSourceFSAdapter_ReadSource_Call {
	return &MockSourceFSAdapter_ReadSource_Call{Call: _e.mock.On("ReadSource", path)}
}

// Return sets the values returned by the call.
func (_c *MockSourceFSAdapter_ReadSource_Call) Return(src *model.Source, err error) *MockSourceFSAdapter_ReadSource_Call {
	_c.Call.Return(src, err)
	return _c
}

// HashFile provides a mock function with given fields: path.
func (_m *MockSourceFSAdapter) HashFile(path model.Path) (string, error) {
	ret := _m.Called(path)
	return ret.String(0), ret.Error(1)
}

// MockSourceFSAdapter_HashFile_Call is the expectation of a HashFile call.
type MockSourceFSAdapter_HashFile_Call struct {
	*mock.Call
}

// HashFile is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) HashFile(path interface{}) *MockSourceFSAdapter_HashFile_Call {
	return &MockSourceFSAdapter_HashFile_Call{Call: _e.mock.On("HashFile", path)}
}

// Return sets the values returned by the call.
func (_c *MockSourceFSAdapter_HashFile_Call) Return(hash string, err error) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Return(hash, err)
	return _c
}

// FileInfo provides a mock function with given fields: path.
func (_m *MockSourceFSAdapter) FileInfo(path model.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	var r0 os.FileInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(os.FileInfo)
	}

	return r0, ret.Error(1)
}

// NewMockSourceFSAdapter creates a new instance of MockSourceFSAdapter. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	m := &MockSourceFSAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
