package log

import (
	"strings"
	"testing"
	"time"
)

func TestDebugDisabledByDefault(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil

	t.Setenv(DebugEnvVar, "")
	InitDebug()

	if DebugEnabled {
		t.Error("Debug should be disabled by default")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be a discard logger, not nil")
	}
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil

	t.Setenv(DebugEnvVar, "1")
	InitDebug()
	defer func() {
		CloseDebug()
		DebugEnabled = false
	}()

	if !DebugEnabled {
		t.Error("Debug should be enabled with RL_DEBUG=1")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be initialized")
	}
}

func TestTraceHelpersNeverPanic(t *testing.T) {
	defer func() { DebugEnabled = false }()

	for _, enabled := range []bool{false, true} {
		DebugEnabled = enabled
		DebugLog = nil

		Debug("test %s", "arg")
		InputTrace("press x=%d", 3)
		GestureTrace("mode=%s", "left")
		LayoutTrace("width=%d", 80)
		RenderTrace("slider", "rows=%d", 3)
	}
}

func TestRenderProfiler(t *testing.T) {
	defer func() { DebugEnabled = false }()

	t.Run("StartRender is a noop when disabled", func(t *testing.T) {
		DebugEnabled = false
		profiler.Reset()

		done := profiler.StartRender("slider")
		done()

		if len(profiler.components) != 0 {
			t.Error("Should not record when disabled")
		}
	})

	t.Run("renders accumulate per component", func(t *testing.T) {
		DebugEnabled = true
		profiler.Reset()

		for i := 0; i < 3; i++ {
			done := profiler.StartRender("slider")
			time.Sleep(time.Millisecond)
			done()
		}

		m := profiler.components["slider"]
		if m == nil {
			t.Fatal("Expected metrics for slider")
		}
		if m.RenderCount != 3 {
			t.Errorf("Expected render count 3, got %d", m.RenderCount)
		}
		if m.MaxTime < time.Millisecond {
			t.Errorf("Expected max time >= 1ms, got %v", m.MaxTime)
		}
	})
}

func TestRecordFrameAndStats(t *testing.T) {
	defer func() { DebugEnabled = false }()

	DebugEnabled = true
	profiler.Reset()

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)
	profiler.StartRender("ruler")()

	if profiler.frames != 2 {
		t.Errorf("Expected frame count 2, got %d", profiler.frames)
	}
	if profiler.frameTime != 30*time.Millisecond {
		t.Errorf("Expected total time 30ms, got %v", profiler.frameTime)
	}

	stats := profiler.GetStats()
	if !strings.Contains(stats, "Render Profile") {
		t.Error("Expected 'Render Profile' in stats")
	}
	if !strings.Contains(stats, "ruler") {
		t.Error("Expected 'ruler' in stats")
	}
	if !strings.Contains(stats, "Avg frame time: 15ms") {
		t.Errorf("Expected average frame time in stats, got %s", stats)
	}
}
