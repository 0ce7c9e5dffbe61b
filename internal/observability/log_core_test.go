package observability

import (
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipLog(t *testing.T) {
	if !shouldSkipLog("http request", map[string]any{"path": "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipLog("http request", map[string]any{"path": "/v1/matches"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipLog("drop malformed event entry", map[string]any{"path": "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestBuildOTelLogAttributes_SortedKeys(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	enc.AddString("match_id", "2025-r01-mro-bla")
	enc.AddInt64("markers", 3)
	enc.AddBool("adjusted", true)

	attrs := buildOTelLogAttributes(enc.Fields)
	if len(attrs) != 3 {
		t.Fatalf("unexpected attribute count: got=%d want=3", len(attrs))
	}
	if attrs[0].Key != "adjusted" || !attrs[0].Value.AsBool() {
		t.Fatalf("unexpected adjusted attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "markers" || attrs[1].Value.AsInt64() != 3 {
		t.Fatalf("unexpected markers attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "match_id" || attrs[2].Value.AsString() != "2025-r01-mro-bla" {
		t.Fatalf("unexpected match_id attribute: %+v", attrs[2])
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"shots": 11,
		"win":   true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("unexpected kind: got=%s want=%s", v.Kind(), otellog.KindMap)
	}
	if got := len(v.AsMap()); got != 2 {
		t.Fatalf("unexpected map size: got=%d want=2", got)
	}
}

func TestOTelLogCore_RespectsLevel(t *testing.T) {
	core := newOTelLogCore("dev", zapcore.WarnLevel)
	if core.Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled below warn")
	}
	if !core.Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled")
	}
	if err := core.With(nil).Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "boom"}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
}
