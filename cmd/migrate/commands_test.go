package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMigrator struct {
	mock.Mock
}

func (m *mockMigrator) Up() error               { return m.Called().Error(0) }
func (m *mockMigrator) Down() error             { return m.Called().Error(0) }
func (m *mockMigrator) Steps(n int) error       { return m.Called(n).Error(0) }
func (m *mockMigrator) Force(version int) error { return m.Called(version).Error(0) }
func (m *mockMigrator) Version() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func runCmd(t *testing.T, m *mockMigrator, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	closed := false
	cmd := newRootCmdWith(func(string, string) (migrator, func(), error) {
		return m, func() { closed = true }, nil
	}, &out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		assert.True(t, closed, "migrator должен закрываться")
	}
	return out.String(), err
}

func TestUp(t *testing.T) {
	m := new(mockMigrator)
	m.On("Up").Return(migrate.ErrNoChange)

	_, err := runCmd(t, m, "up")

	assert.NoError(t, err, "ErrNoChange — не ошибка")
	m.AssertExpectations(t)
}

func TestUp_Steps(t *testing.T) {
	m := new(mockMigrator)
	m.On("Steps", 2).Return(nil)

	_, err := runCmd(t, m, "up", "2")

	assert.NoError(t, err)
	m.AssertExpectations(t)
}

func TestDown(t *testing.T) {
	m := new(mockMigrator)
	m.On("Steps", -1).Return(nil)
	m.On("Down").Return(nil)

	_, err := runCmd(t, m, "down")
	require.NoError(t, err)

	_, err = runCmd(t, m, "down", "--all")
	require.NoError(t, err)

	m.AssertExpectations(t)
}

func TestForce(t *testing.T) {
	m := new(mockMigrator)
	m.On("Force", 2).Return(nil)

	_, err := runCmd(t, m, "force", "2")
	require.NoError(t, err)

	_, err = runCmd(t, m, "force", "two")
	assert.Error(t, err)

	m.AssertExpectations(t)
}

func TestVersion(t *testing.T) {
	m := new(mockMigrator)
	m.On("Version").Return(uint(3), false, nil).Once()
	m.On("Version").Return(uint(0), false, migrate.ErrNilVersion).Once()

	out, err := runCmd(t, m, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version 3 (dirty: false)")

	out, err = runCmd(t, m, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "no migrations applied")
}

func TestInvalidArgs(t *testing.T) {
	m := new(mockMigrator)

	_, err := runCmd(t, m, "up", "0")
	assert.Error(t, err)

	_, err = runCmd(t, m, "down", "1", "2")
	assert.Error(t, err)

	m.AssertNotCalled(t, "Steps", mock.Anything)
}

func TestOpenFailure(t *testing.T) {
	cmd := newRootCmdWith(func(string, string) (migrator, func(), error) {
		return nil, nil, errors.New("connection refused")
	}, &bytes.Buffer{})
	cmd.SetArgs([]string{"up"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.EqualError(t, cmd.Execute(), "connection refused")
}
