package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"wgslkit/internal/diag"
	"wgslkit/internal/diagfmt"
	"wgslkit/internal/source"
)

func TestJSONShape(t *testing.T) {
	bag, fs, id := makeBag(t, "var x i32;\n")
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: id, Start: 6, End: 9},
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 0, End: 3}, Msg: "in this declaration"}},
	})

	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2001" || d.Severity != "ERROR" {
		t.Errorf("code/severity = %s/%s", d.Code, d.Severity)
	}
	if d.Location.StartByte != 6 || d.Location.EndByte != 9 {
		t.Errorf("location bytes = %d..%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 7 {
		t.Errorf("location pos = %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "in this declaration" {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestJSONTruncation(t *testing.T) {
	bag, fs, id := makeBag(t, "abc\n")
	for i := range 5 {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  "boom",
			Primary:  source.Span{File: id, Start: uint32(i % 3), End: uint32(i%3) + 1},
		})
	}

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 5 || len(out.Diagnostics) != 2 || !out.Truncated {
		t.Errorf("count=%d listed=%d truncated=%v", out.Count, len(out.Diagnostics), out.Truncated)
	}
}

func TestJSONEmptyBag(t *testing.T) {
	_, fs, _ := makeBag(t, "")
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, nil, fs, diagfmt.JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 0 || out.Diagnostics == nil || len(out.Diagnostics) != 0 {
		t.Errorf("empty output = %+v", out)
	}
}
