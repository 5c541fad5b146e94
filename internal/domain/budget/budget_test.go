package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConcept(t *testing.T, label, amount string) *Concept {
	t.Helper()
	c, err := NewConcept(1, label, decimal.RequireFromString(amount))
	require.NoError(t, err)
	return c
}

func mustPayment(t *testing.T, amount string) *Payment {
	t.Helper()
	p, err := NewPayment(1, decimal.RequireFromString(amount), time.Now(), "Transferencia", "")
	require.NoError(t, err)
	return p
}

func TestNewBudget(t *testing.T) {
	t.Run("valid budget starts in default status", func(t *testing.T) {
		b, err := NewBudget("Mantenimiento anual", "Mantenimiento", 1, 2, 3, "", "2 semanas", "Alta", "Norte")
		require.NoError(t, err)
		assert.Equal(t, DefaultStatus, b.Status())
		assert.Equal(t, "Alta", b.Priority())
		assert.Empty(t, b.Concepts())
		assert.Empty(t, b.Payments())
	})

	t.Run("empty priority defaults to Media", func(t *testing.T) {
		b, err := NewBudget("Instalación", "Instalación", 1, 2, 3, "", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Media", b.Priority())
	})

	t.Run("missing name fails", func(t *testing.T) {
		_, err := NewBudget("", "Mantenimiento", 1, 2, 3, "", "", "", "")
		assert.Error(t, err)
	})

	t.Run("missing customer contact fails", func(t *testing.T) {
		_, err := NewBudget("x", "Mantenimiento", 1, 2, 0, "", "", "", "")
		assert.Error(t, err)
	})
}

func TestBudget_Totals(t *testing.T) {
	newBudget := func(t *testing.T) *Budget {
		t.Helper()
		b, err := NewBudget("Obra civil", "Construcción", 1, 2, 3, "", "", "Media", "")
		require.NoError(t, err)
		return b
	}

	t.Run("no concepts and no payments yields zero everywhere", func(t *testing.T) {
		b := newBudget(t)
		totals := b.Totals()
		assert.True(t, totals.TotalCost.IsZero())
		assert.True(t, totals.TotalPaid.IsZero())
		assert.True(t, totals.BalanceDue.IsZero())
	})

	t.Run("balance is cost minus paid, exactly", func(t *testing.T) {
		b := newBudget(t)
		b.SetConcepts([]*Concept{
			mustConcept(t, "Material", "1250.10"),
			mustConcept(t, "Mano de obra", "3499.95"),
		})
		b.SetPayments([]*Payment{
			mustPayment(t, "1000.00"),
			mustPayment(t, "0.05"),
		})

		totals := b.Totals()
		assert.True(t, totals.TotalCost.Equal(decimal.RequireFromString("4750.05")), "got %s", totals.TotalCost)
		assert.True(t, totals.TotalPaid.Equal(decimal.RequireFromString("1000.05")), "got %s", totals.TotalPaid)
		assert.True(t, totals.BalanceDue.Equal(decimal.RequireFromString("3750.00")), "got %s", totals.BalanceDue)
	})

	t.Run("overpayment yields negative balance", func(t *testing.T) {
		b := newBudget(t)
		b.SetConcepts([]*Concept{mustConcept(t, "Servicio", "100.00")})
		b.SetPayments([]*Payment{mustPayment(t, "150.00")})

		totals := b.Totals()
		assert.True(t, totals.BalanceDue.Equal(decimal.RequireFromString("-50.00")))
	})

	t.Run("cents accumulate without float drift", func(t *testing.T) {
		b := newBudget(t)
		concepts := make([]*Concept, 0, 10)
		for i := 0; i < 10; i++ {
			concepts = append(concepts, mustConcept(t, "Partida", "0.10"))
		}
		b.SetConcepts(concepts)

		totals := b.Totals()
		assert.True(t, totals.TotalCost.Equal(decimal.RequireFromString("1.00")), "got %s", totals.TotalCost)
	})

	t.Run("recomputed on every call", func(t *testing.T) {
		b := newBudget(t)
		b.SetConcepts([]*Concept{mustConcept(t, "Servicio", "200.00")})
		first := b.Totals()
		assert.True(t, first.BalanceDue.Equal(decimal.RequireFromString("200.00")))

		b.SetPayments([]*Payment{mustPayment(t, "200.00")})
		second := b.Totals()
		assert.True(t, second.BalanceDue.IsZero())
	})
}

func TestBudget_ChangeStatus(t *testing.T) {
	b, err := NewBudget("Proyecto", "Instalación", 1, 2, 3, "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, b.ChangeStatus("Aprobado"))
	assert.Equal(t, "Aprobado", b.Status())

	assert.Error(t, b.ChangeStatus(""))
}

func TestNewConcept(t *testing.T) {
	t.Run("amount is rounded to cents", func(t *testing.T) {
		c, err := NewConcept(1, "Material", decimal.RequireFromString("10.005"))
		require.NoError(t, err)
		assert.True(t, c.Amount().Equal(decimal.RequireFromString("10.01")), "got %s", c.Amount())
	})

	t.Run("negative amount fails", func(t *testing.T) {
		_, err := NewConcept(1, "Material", decimal.RequireFromString("-1"))
		assert.Error(t, err)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		c, err := NewConcept(1, "Cortesía", decimal.Zero)
		require.NoError(t, err)
		assert.True(t, c.Amount().IsZero())
	})
}

func TestNewPayment(t *testing.T) {
	t.Run("zero amount fails", func(t *testing.T) {
		_, err := NewPayment(1, decimal.Zero, time.Now(), "Efectivo", "")
		assert.Error(t, err)
	})

	t.Run("missing date fails", func(t *testing.T) {
		_, err := NewPayment(1, decimal.RequireFromString("10"), time.Time{}, "Efectivo", "")
		assert.Error(t, err)
	})
}
