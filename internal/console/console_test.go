package console

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityInfo, "info"},
		{SeverityWarn, "warn"},
		{SeverityError, "error"},
		{Severity(7), "severity(7)"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(tt.sev), got, tt.want)
		}
	}
}

func TestScriptedAnswersInOrder(t *testing.T) {
	con := NewScripted("3", "#ff0000")

	if got, ok := con.Prompt("radius"); !ok || got != "3" {
		t.Fatalf("first prompt = %q, %v", got, ok)
	}
	con.Push("x")
	if got, ok := con.Prompt("color"); !ok || got != "#ff0000" {
		t.Fatalf("second prompt = %q, %v", got, ok)
	}
	if got, _ := con.Prompt("more"); got != "x" {
		t.Errorf("pushed answer = %q, want x", got)
	}
	if _, ok := con.Prompt("empty"); ok {
		t.Error("expected no answer once the queue is drained")
	}

	prompts := con.Prompts()
	if len(prompts) != 4 || prompts[0] != "radius" {
		t.Errorf("prompts = %v", prompts)
	}
}

func TestScriptedRecordsReports(t *testing.T) {
	con := NewScripted()
	if _, ok := con.Last(); ok {
		t.Fatal("Last on empty console should report false")
	}

	con.Report("filled 12 pixels", SeverityInfo)
	con.Report("layer hidden", SeverityWarn)

	last, ok := con.Last()
	if !ok || last.Text != "layer hidden" || last.Severity != SeverityWarn {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
	if n := len(con.Messages()); n != 2 {
		t.Errorf("got %d messages, want 2", n)
	}
}

func TestDiscard(t *testing.T) {
	if _, ok := Discard.Prompt("anything"); ok {
		t.Error("Discard should never answer")
	}
	Discard.Report("dropped", SeverityError)
}
