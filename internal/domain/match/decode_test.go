package match

import (
	"testing"
)

func TestParseEventField_Sentinels(t *testing.T) {
	for _, raw := range []string{"-1", "-1,-1", "", "   ", "None", "nan", "NaN", " -1 "} {
		if field := ParseEventField(raw); field.Present() {
			t.Fatalf("expected sentinel %q to decode as absent, got raw=%q", raw, field.Raw())
		}
	}

	field := ParseEventField(" Dupont,23 ")
	if !field.Present() || field.Raw() != "Dupont,23" {
		t.Fatalf("unexpected field: present=%v raw=%q", field.Present(), field.Raw())
	}
}

func TestDecode_SentinelFieldsYieldNoEvents(t *testing.T) {
	record := Record{
		GoalsFor:           ParseEventField("-1"),
		GoalsAgainst:       ParseEventField("-1,-1"),
		YellowCardsFor:     ParseEventField(""),
		YellowCardsAgainst: ParseEventField("None"),
		RedCardsFor:        ParseEventField("nan"),
		RedCardsAgainst:    ParseEventField("-1"),
		ChangesFor:         ParseEventField("-1"),
		ChangesAgainst:     EventField{},
	}

	if got := Decode(record); len(got) != 0 {
		t.Fatalf("expected no events, got %+v", got)
	}
}

func TestDecode_ForFieldUsesLastTokenAsMinute(t *testing.T) {
	record := Record{
		GoalsFor: PresentField("Smith,Jones,52"),
	}

	got := Decode(record)
	if len(got) != 1 {
		t.Fatalf("unexpected event count: got=%d want=1", len(got))
	}
	if got[0].Minute != "52" {
		t.Fatalf("unexpected minute: got=%q want=%q", got[0].Minute, "52")
	}
	if got[0].Side != SideHome || got[0].Kind != KindGoal {
		t.Fatalf("unexpected event: %+v", got[0])
	}
	if got[0].Player != "Smith,Jones" {
		t.Fatalf("unexpected player: %q", got[0].Player)
	}
}

func TestDecode_AgainstFieldKeepsOnlyValidMinutes(t *testing.T) {
	record := Record{
		GoalsAgainst:       PresentField("12, abc,67,-3,,45+2"),
		YellowCardsAgainst: PresentField("30"),
	}

	got := Decode(record)
	wantMinutes := []string{"12", "67", "45+2", "30"}
	if len(got) != len(wantMinutes) {
		t.Fatalf("unexpected event count: got=%d want=%d (%+v)", len(got), len(wantMinutes), got)
	}
	for i, want := range wantMinutes {
		if got[i].Minute != want {
			t.Fatalf("event %d: unexpected minute got=%q want=%q", i, got[i].Minute, want)
		}
		if got[i].Side != SideAway {
			t.Fatalf("event %d: expected away side, got %s", i, got[i].Side)
		}
	}
	if got[3].Kind != KindYellowCard {
		t.Fatalf("expected yellow card, got %s", got[3].Kind)
	}
}

func TestDecode_DropsMalformedEntries(t *testing.T) {
	record := Record{
		GoalsFor:   PresentField("Dupont,23;lonely;Martin,xx;;Roy, 81 "),
		ChangesFor: PresentField("A,B,60;C,70;D,E,F,75;G,H,88"),
	}

	var drops []Drop
	got := DecodeWithObserver(record, func(d Drop) { drops = append(drops, d) })

	want := []struct {
		minute string
		kind   Kind
	}{
		{"23", KindGoal},
		{"81", KindGoal},
		{"60", KindSubstitution},
		{"88", KindSubstitution},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected event count: got=%d want=%d (%+v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Minute != w.minute || got[i].Kind != w.kind {
			t.Fatalf("event %d: got=%s/%s want=%s/%s", i, got[i].Minute, got[i].Kind, w.minute, w.kind)
		}
	}
	if len(drops) != 4 {
		t.Fatalf("unexpected drop count: got=%d want=4 (%+v)", len(drops), drops)
	}
}

func TestDecode_FieldOrderAndTooltips(t *testing.T) {
	record := Record{
		GoalsFor:           PresentField("Dupont,23"),
		GoalsAgainst:       PresentField("10"),
		YellowCardsFor:     PresentField("Gagnon,40"),
		YellowCardsAgainst: PresentField("41"),
		RedCardsFor:        PresentField("Roy,80"),
		RedCardsAgainst:    PresentField("85"),
		ChangesFor:         PresentField("Lavoie,Côté,60"),
		ChangesAgainst:     PresentField(",,70"),
	}

	got := Decode(record)
	want := []struct {
		side    Side
		kind    Kind
		tooltip string
	}{
		{SideHome, KindGoal, "Scorer: Dupont"},
		{SideAway, KindGoal, "Goal"},
		{SideHome, KindYellowCard, "Warned: Gagnon"},
		{SideAway, KindYellowCard, "Yellow card"},
		{SideHome, KindRedCard, "Sent off: Roy"},
		{SideAway, KindRedCard, "Red card"},
		{SideHome, KindSubstitution, "Lavoie → Côté"},
		{SideAway, KindSubstitution, "Substitution"},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected event count: got=%d want=%d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Side != w.side || got[i].Kind != w.kind || got[i].Tooltip != w.tooltip {
			t.Fatalf("event %d: got=%+v want=%+v", i, got[i], w)
		}
	}
}

func TestDecode_DoesNotMutateRecord(t *testing.T) {
	record := Record{GoalsFor: PresentField("Dupont,23")}
	before := record

	_ = Decode(record)
	if record != before {
		t.Fatalf("record mutated: before=%+v after=%+v", before, record)
	}
}

func TestParseMinute(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{"37", 37, true},
		{" 90 ", 90, true},
		{"45+2", 45, true},
		{"0", 0, true},
		{"-1", 0, false},
		{"abc", 0, false},
		{"45+", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseMinute(tt.in)
		if ok != tt.valid || got != tt.want {
			t.Fatalf("ParseMinute(%q): got=(%d,%v) want=(%d,%v)", tt.in, got, ok, tt.want, tt.valid)
		}
	}
}

func TestDescribeEvent_UnknownKindFallsBackToCapitalizedKind(t *testing.T) {
	got := DescribeEvent(Event{Kind: Kind("penalty")})
	if got != "Penalty" {
		t.Fatalf("unexpected tooltip: %q", got)
	}
}
