// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockRandomSource struct {
	mock.Mock
}

func (m *MockRandomSource) IntN(n int) int {
	args := m.Called(n)
	return args.Int(0)
}
