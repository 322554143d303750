package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestFileExporter_WritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "traces.jsonl")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(`{"existing":"data"}`+"\n"), 0o600))

	exporter, err := NewFileExporter(path)
	require.NoError(t, err)

	start := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	stub := tracetest.SpanStub{
		Name:       SpanPractice,
		StartTime:  start,
		EndTime:    start.Add(1500 * time.Millisecond),
		Attributes: []attribute.KeyValue{attribute.String(AttrLessonID, "1.3")},
		Status:     sdktrace.Status{Code: codes.Ok},
		Events: []sdktrace.Event{{
			Name:       EventCommand,
			Time:       start,
			Attributes: []attribute.KeyValue{attribute.String(AttrCommand, "next")},
		}},
	}
	require.NoError(t, exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.Len(t, lines, 2, "existing content is kept")

	var rec SpanRecord
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	require.Equal(t, SpanPractice, rec.Name)
	require.Equal(t, "OK", rec.Status)
	require.InDelta(t, 1500.0, rec.DurationMs, 0.001)
	require.Equal(t, "1.3", rec.Attributes[AttrLessonID])
	require.Len(t, rec.Events, 1)
	require.Equal(t, "next", rec.Events[0].Attributes[AttrCommand])
}

func TestFileExporter_ExportAfterShutdown(t *testing.T) {
	exporter, err := NewFileExporter(filepath.Join(t.TempDir(), "t.jsonl"))
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	stub := tracetest.SpanStub{Name: "x"}
	require.Error(t, exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
}
