package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnBackground(ctx, "gradient", "public/ai_background.png", time.Millisecond)
	p.OnLetterPlaced(ctx, 'B', 256, 240, 80, 0, 3)
	p.OnRenderComplete(ctx, 7, time.Millisecond)
	p.OnOutputSaved(ctx, "icon-512.png", 512, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	Pipeline().OnLetterPlaced(context.Background(), 'A', 0, 0, 60, 0, 1)
	if custom.placed != 1 {
		t.Errorf("custom hooks received %d placements, want 1", custom.placed)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

type testPipelineHooks struct {
	NoopPipelineHooks
	placed int
}

func (h *testPipelineHooks) OnLetterPlaced(context.Context, rune, float64, float64, float64, float64, int) {
	h.placed++
}
