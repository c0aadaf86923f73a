package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarZeroValue(t *testing.T) {
	var s Scalar
	assert.Equal(t, 0.0, s.Get())

	s.Set(0.5)
	assert.Equal(t, 0.5, s.Get())
}

func TestScalarNotifiesInOrder(t *testing.T) {
	s := NewScalar(0.2)

	var calls []string
	s.Subscribe(func(prev, next float64) {
		calls = append(calls, "first")
		assert.Equal(t, 0.2, prev)
		assert.Equal(t, 0.4, next)
	})
	s.Subscribe(func(prev, next float64) {
		calls = append(calls, "second")
		// Observers run after the store, so the scalar already holds the new value.
		assert.Equal(t, 0.4, s.Get())
	})

	s.Set(0.4)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestScalarUnsubscribe(t *testing.T) {
	s := NewScalar(0)

	count := 0
	sub := s.Subscribe(func(_, _ float64) { count++ })
	require.Equal(t, 1, s.SubscriberCount())

	s.Set(1)
	sub.Unsubscribe()
	sub.Unsubscribe()
	s.Set(2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, s.SubscriberCount())
}

func TestNilSubscriptionUnsubscribe(t *testing.T) {
	var sub *Subscription
	assert.NotPanics(t, func() { sub.Unsubscribe() })
}
