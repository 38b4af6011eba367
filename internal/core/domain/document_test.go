package domain

import "testing"

func TestDocument_SourceText(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		override string
		want     string
	}{
		{
			name:     "override wins over everything",
			doc:      Document{ExtractedText: "extracted", ReviewedText: "reviewed"},
			override: "override",
			want:     "override",
		},
		{
			name: "reviewed wins over extracted",
			doc:  Document{ExtractedText: "extracted", ReviewedText: "reviewed"},
			want: "reviewed",
		},
		{
			name: "extracted when nothing else",
			doc:  Document{ExtractedText: "extracted"},
			want: "extracted",
		},
		{
			name: "empty when no text at all",
			doc:  Document{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.doc.SourceText(tt.override)
			if got != tt.want {
				t.Errorf("SourceText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuestionCounts_Valid(t *testing.T) {
	if !(QuestionCounts{MCQ: 2, Short: 1, Long: 0}).Valid() {
		t.Error("expected non-negative counts to be valid")
	}
	if (QuestionCounts{MCQ: -1}).Valid() {
		t.Error("expected negative mcq count to be invalid")
	}
	if (QuestionCounts{Short: -3}).Valid() {
		t.Error("expected negative short count to be invalid")
	}
	if !(QuestionCounts{}).Valid() {
		t.Error("expected zero counts to be valid")
	}
}

func TestQuestionCounts_Total(t *testing.T) {
	counts := QuestionCounts{MCQ: 2, Short: 3, Long: 1}
	if counts.Total() != 6 {
		t.Errorf("expected total 6, got %d", counts.Total())
	}
}
