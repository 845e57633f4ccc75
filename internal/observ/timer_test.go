package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	end := tm.Start("parse")
	time.Sleep(time.Millisecond)
	end("1 file")

	report := tm.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(report.Phases))
	}
	p := report.Phases[0]
	if p.Name != "parse" || p.Note != "1 file" {
		t.Errorf("phase = %+v", p)
	}
	if p.DurationMS <= 0 {
		t.Errorf("duration = %v, want > 0", p.DurationMS)
	}
	if report.TotalMS < p.DurationMS {
		t.Errorf("total %v < phase %v", report.TotalMS, p.DurationMS)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.Start("tokenize")("")
	tm.Start("parse")("3 files")

	summary := tm.Summary()
	for _, want := range []string{"timings:", "tokenize", "parse", "3 files", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimerReport(t *testing.T) {
	if report := NewTimer().Report(); len(report.Phases) != 0 || report.TotalMS != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}
