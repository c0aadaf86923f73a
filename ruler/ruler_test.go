package ruler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"rangeline/feedback"
)

func TestCheckCrossing(t *testing.T) {
	tests := []struct {
		name  string
		prev  float64
		next  float64
		count int
		want  bool
	}{
		{name: "crosses 0.1", prev: 0.09, next: 0.11, count: 10, want: true},
		{name: "same tick", prev: 0.11, next: 0.19, count: 10, want: false},
		{name: "backwards crossing", prev: 0.31, next: 0.29, count: 10, want: true},
		{name: "several ticks at once", prev: 0.05, next: 0.95, count: 10, want: true},
		{name: "landing on a boundary", prev: 0.19, next: 0.2, count: 10, want: true},
		{name: "no movement", prev: 0.5, next: 0.5, count: 40, want: false},
		{name: "zero count", prev: 0.1, next: 0.9, count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckCrossing(tt.prev, tt.next, tt.count))
		})
	}
}

func TestTickNotifierSinglePulsePerSample(t *testing.T) {
	rec := &feedback.Recorder{}
	n := NewTickNotifier(New(10, 5))

	// Both ends cross in the same sample.
	fired := n.Observe(rec, 0.09, 0.49, 0.11, 0.51)

	assert.True(t, fired)
	assert.Equal(t, []string{"notify", "prepare"}, rec.Events())
}

func TestTickNotifierQuietCases(t *testing.T) {
	tests := []struct {
		name  string
		ruler *Ruler
		gen   feedback.Generator
	}{
		{name: "no ruler", ruler: nil, gen: &feedback.Recorder{}},
		{name: "zero ticks", ruler: New(0, 1), gen: &feedback.Recorder{}},
		{name: "idle", ruler: New(10, 1), gen: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewTickNotifier(tt.ruler)
			assert.False(t, n.Observe(tt.gen, 0.0, 0.5, 0.9, 1.0))
			if rec, ok := tt.gen.(*feedback.Recorder); ok {
				assert.Zero(t, rec.Notifies())
			}
		})
	}

	var nilNotifier *TickNotifier
	assert.False(t, nilNotifier.Enabled())
}

func TestTickNotifierNoCrossing(t *testing.T) {
	rec := &feedback.Recorder{}
	n := NewTickNotifier(New(10, 5))

	assert.False(t, n.Observe(rec, 0.11, 0.51, 0.19, 0.59))
	assert.Empty(t, rec.Events())
}

func TestMarks(t *testing.T) {
	got := New(4, 2).Marks()
	want := []Mark{
		{Index: 0, Position: 0, Major: true},
		{Index: 1, Position: 0.25, Major: false},
		{Index: 2, Position: 0.5, Major: true},
		{Index: 3, Position: 0.75, Major: false},
		{Index: 4, Position: 1, Major: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Marks() mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, New(0, 1).Marks())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New(40, 10).Validate())
	assert.NoError(t, New(0, 1).Validate())
	assert.Error(t, New(-1, 1).Validate())
	assert.Error(t, New(10, 0).Validate())
}
