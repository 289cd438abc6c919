package router

import (
	"context"
	"reflect"
	"testing"

	"sccse-chatbot/internal/pending"
	"sccse-chatbot/pkg/log"
)

func TestRules_Order(t *testing.T) {
	want := []Intent{
		IntentOffTopic,
		IntentNameQuery,
		IntentConfirmNote,
		IntentConfirmDelete,
		IntentSaveNote,
		IntentDeleteNotes,
		IntentSkillProvenance,
		IntentEvents,
		IntentTeamRecommendation,
		IntentAnswer,
	}
	got := make([]Intent, 0, len(want))
	for _, r := range Rules() {
		got = append(got, r.Intent)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rule order = %v, want %v", got, want)
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rs := Rules()
	rs[0] = Rule{Intent: IntentAnswer}
	if Rules()[0].Intent != IntentOffTopic {
		t.Fatal("mutating Rules() result changed the cascade")
	}
}

func TestClassify(t *testing.T) {
	r := New(log.NewNop())
	ctx := context.Background()

	tests := []struct {
		name       string
		in         Input
		want       Intent
		candidates []Intent
	}{
		{
			name: "off-topic beats everything",
			in:   Input{Message: "what is python", Pending: pending.KindNote},
			want: IntentOffTopic,
		},
		{
			name: "name query",
			in:   Input{Message: "Hey, what is my name?"},
			want: IntentNameQuery,
		},
		{
			name: "pending note takes any message",
			in:   Input{Message: "admin123", Pending: pending.KindNote},
			want: IntentConfirmNote,
		},
		{
			name: "pending delete",
			in:   Input{Message: "wrong", Pending: pending.KindDelete},
			want: IntentConfirmDelete,
		},
		{
			name: "note request",
			in:   Input{Message: "Note that club meets Friday"},
			want: IntentSaveNote,
		},
		{
			name: "delete request",
			in:   Input{Message: "please clear notes"},
			want: IntentDeleteNotes,
		},
		{
			name: "provenance",
			in:   Input{Message: "how did you know that?"},
			want: IntentSkillProvenance,
		},
		{
			name:       "event falls through to team and answer",
			in:         Input{Message: "which team runs the upcoming event?"},
			want:       IntentEvents,
			candidates: []Intent{IntentEvents, IntentTeamRecommendation, IntentAnswer},
		},
		{
			name:       "team recommendation",
			in:         Input{Message: "which team should I join"},
			want:       IntentTeamRecommendation,
			candidates: []Intent{IntentTeamRecommendation, IntentAnswer},
		},
		{
			name:       "default answer",
			in:         Input{Message: "who is the chapter president?"},
			want:       IntentAnswer,
			candidates: []Intent{IntentAnswer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Classify(ctx, tt.in)
			if out.Intent != tt.want {
				t.Errorf("Classify(%q).Intent = %s, want %s", tt.in.Message, out.Intent, tt.want)
			}
			if tt.candidates != nil && !reflect.DeepEqual(out.Candidates, tt.candidates) {
				t.Errorf("Classify(%q).Candidates = %v, want %v", tt.in.Message, out.Candidates, tt.candidates)
			}
			if last := out.Candidates[len(out.Candidates)-1]; last != IntentAnswer {
				t.Errorf("last candidate = %s, want %s", last, IntentAnswer)
			}
		})
	}
}

func TestNoteDraft(t *testing.T) {
	tests := []struct {
		msg    string
		want   string
		wantOK bool
	}{
		{"note that club meets Friday", "club meets Friday", true},
		{"  Note That Hackathon on 12 March  ", "Hackathon on 12 March", true},
		{"note that", "", true},
		{"please note that x", "", false},
		{"note", "", false},
	}
	for _, tt := range tests {
		got, ok := NoteDraft(tt.msg)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NoteDraft(%q) = (%q, %v), want (%q, %v)", tt.msg, got, ok, tt.want, tt.wantOK)
		}
	}
}
