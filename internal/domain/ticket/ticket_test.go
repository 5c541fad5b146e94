package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "norte/internal/domain/ticket/valueobjects"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(10, 5, vo.PriorityMedium, nil, nil, "revisar instalación")
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		tk := newValidTicket(t)
		assert.Equal(t, vo.StatusScheduled, tk.Status())
		assert.Equal(t, uint(10), tk.BudgetID())
		assert.Equal(t, uint(5), tk.AssigneeID())
		assert.Empty(t, tk.Tasks())
		assert.Equal(t, 0, tk.Progress())
	})

	t.Run("missing budget", func(t *testing.T) {
		_, err := NewTicket(0, 5, vo.PriorityMedium, nil, nil, "")
		assert.ErrorContains(t, err, "budget ID is required")
	})

	t.Run("missing assignee", func(t *testing.T) {
		_, err := NewTicket(10, 0, vo.PriorityMedium, nil, nil, "")
		assert.ErrorContains(t, err, "assignee ID is required")
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := NewTicket(10, 5, vo.Priority("Urgente"), nil, nil, "")
		assert.ErrorContains(t, err, "invalid priority")
	})

	t.Run("end before start", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)
		_, err := NewTicket(10, 5, vo.PriorityHigh, &start, &end, "")
		assert.ErrorContains(t, err, "scheduled end")
	})
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusOnHold))
	assert.Equal(t, vo.StatusOnHold, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusCancelled))
	assert.Equal(t, vo.StatusCancelled, tk.Status())

	err := tk.ChangeStatus(vo.Status("Archivado"))
	assert.ErrorContains(t, err, "invalid status")
	assert.Equal(t, vo.StatusCancelled, tk.Status())
}

func TestTicket_RefreshStatus(t *testing.T) {
	tk := newValidTicket(t)
	now := time.Now()

	tasks := taskSet(t, 2, 0)
	changed := tk.RefreshStatus(tasks)
	assert.False(t, changed)
	assert.Equal(t, vo.StatusScheduled, tk.Status())

	tasks[0].ToggleComplete(now)
	changed = tk.RefreshStatus(tasks)
	assert.True(t, changed)
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	tasks[1].ToggleComplete(now)
	changed = tk.RefreshStatus(tasks)
	assert.True(t, changed)
	assert.Equal(t, vo.StatusCompleted, tk.Status())
}

func TestTask_ChangeStatus_CompletedAt(t *testing.T) {
	task, err := NewTask(1, "cablear tablero", "", nil, nil, nil)
	require.NoError(t, err)
	require.Nil(t, task.CompletedAt())

	now := time.Now()
	require.NoError(t, task.ChangeStatus(vo.TaskStatusCompleted, now))
	require.NotNil(t, task.CompletedAt())
	assert.Equal(t, now, *task.CompletedAt())

	require.NoError(t, task.ChangeStatus(vo.TaskStatusInProgress, now.Add(time.Minute)))
	assert.Nil(t, task.CompletedAt())
}

func TestTask_ToggleComplete(t *testing.T) {
	task, err := NewTask(1, "pintar estructura", "", nil, nil, nil)
	require.NoError(t, err)

	now := time.Now()
	task.ToggleComplete(now)
	assert.True(t, task.IsCompleted())
	require.NotNil(t, task.CompletedAt())

	task.ToggleComplete(now.Add(time.Hour))
	assert.False(t, task.IsCompleted())
	assert.Equal(t, vo.TaskStatusPending, task.Status())
	assert.Nil(t, task.CompletedAt())
}
