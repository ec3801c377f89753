package questionnaire

import (
	"math"
	"testing"
)

func TestIsVisibleWithoutConditionAlwaysTrue(t *testing.T) {
	q := Question{ID: "q", Kind: KindShortText}
	if !IsVisible(q, Answers{}) {
		t.Fatalf("unconditioned question should always be visible")
	}
}

func TestIsVisibleFollowsConditionValue(t *testing.T) {
	q := Question{
		ID:        "detail",
		Kind:      KindLongText,
		Condition: &Condition{QuestionID: "gate", Value: AnswerYes},
	}

	if IsVisible(q, Answers{}) {
		t.Fatalf("conditioned question should be hidden with no answer")
	}
	if IsVisible(q, Answers{"gate": AnswerNo}) {
		t.Fatalf("conditioned question should be hidden on a non-matching answer")
	}
	if !IsVisible(q, Answers{"gate": AnswerYes}) {
		t.Fatalf("conditioned question should be visible on a matching answer")
	}
}

func TestNextVisibleIndexSkipsHiddenQuestions(t *testing.T) {
	g := IntakeGraph()
	answers := Answers{QHasConditions: AnswerNo}

	start, ok := g.IndexOf(QHasConditions)
	if !ok {
		t.Fatalf("missing question %q", QHasConditions)
	}
	next := g.NextVisibleIndex(start, answers)
	if got := g.Question(next).ID; got != QMedications {
		t.Fatalf("expected %q after a negative answer, got %q", QMedications, got)
	}
}

func TestNextVisibleIndexFromTerminalStaysAtTerminal(t *testing.T) {
	g := IntakeGraph()
	terminal := g.TerminalIndex()
	if got := g.NextVisibleIndex(terminal, Answers{}); got != terminal {
		t.Fatalf("expected terminal to be absorbing, got index %d", got)
	}
}

func TestPreviousVisibleIndexAtStartReportsNone(t *testing.T) {
	g := IntakeGraph()
	if _, ok := g.PreviousVisibleIndex(0, Answers{}); ok {
		t.Fatalf("expected no previous question at index 0")
	}
}

func TestAdvanceBinaryYesJumpsToConditionedQuestion(t *testing.T) {
	g := IntakeGraph()
	index, ok := g.IndexOf(QMedications)
	if !ok {
		t.Fatalf("missing question %q", QMedications)
	}

	answers := Answers{QMedications: AnswerYes}
	next := g.Advance(index, answers)
	if got := g.Question(next).ID; got != QMedicationsInfo {
		t.Fatalf("expected affirmative answer to jump to %q, got %q", QMedicationsInfo, got)
	}
}

func TestAdvanceBinaryNoSkipsConditionedQuestion(t *testing.T) {
	g := IntakeGraph()
	index, ok := g.IndexOf(QMedications)
	if !ok {
		t.Fatalf("missing question %q", QMedications)
	}

	answers := Answers{QMedications: AnswerNo}
	next := g.Advance(index, answers)
	if got := g.Question(next).ID; got != QHasIntolerances {
		t.Fatalf("expected negative answer to skip the detail question, got %q", got)
	}
}

func TestCompleteAtTerminal(t *testing.T) {
	g := IntakeGraph()
	if !g.Complete(g.TerminalIndex(), Answers{}) {
		t.Fatalf("terminal index should be complete")
	}
	if g.Complete(0, Answers{}) {
		t.Fatalf("first index should not be complete")
	}
}

func TestCompleteOnLastAnswerableQuestion(t *testing.T) {
	g := IntakeGraph()
	index, ok := g.IndexOf(QNotes)
	if !ok {
		t.Fatalf("missing question %q", QNotes)
	}
	if !g.Complete(index, Answers{}) {
		t.Fatalf("the last answerable question should report complete")
	}
}

func TestProgressExcludesSectionsAndTerminal(t *testing.T) {
	g := IntakeGraph()
	if got := g.Progress(Answers{}); got != 0 {
		t.Fatalf("expected zero progress with no answers, got %f", got)
	}

	answers := Answers{}
	for _, q := range g.Questions() {
		if q.Kind == KindSection || q.Kind == KindTerminal {
			continue
		}
		if !IsVisible(q, answers) {
			continue
		}
		switch q.Kind {
		case KindBinary:
			answers[q.ID] = AnswerNo
		case KindNumber:
			answers[q.ID] = 42.0
		case KindSingleChoice:
			answers[q.ID] = q.Options[0]
		default:
			answers[q.ID] = "something"
		}
	}
	if got := g.Progress(answers); got != 1 {
		t.Fatalf("expected full progress with every visible question answered, got %f", got)
	}
}

func TestProgressGrowsMonotonicallyAlongTheHappyPath(t *testing.T) {
	g := IntakeGraph()
	answers := Answers{}
	last := 0.0

	for _, q := range g.Questions() {
		if q.Kind == KindSection || q.Kind == KindTerminal {
			continue
		}
		if !IsVisible(q, answers) {
			continue
		}
		switch q.Kind {
		case KindBinary:
			answers[q.ID] = AnswerYes
		case KindNumber:
			answers[q.ID] = 30.0
		case KindSingleChoice:
			answers[q.ID] = q.Options[0]
		default:
			answers[q.ID] = "answer"
		}

		got := g.Progress(answers)
		// Answering Yes can reveal a new question, so allow small dips from
		// the growing denominator but never below the previous answered count.
		if got < last-0.2 {
			t.Fatalf("progress dropped sharply after %q: %f -> %f", q.ID, last, got)
		}
		last = got
	}

	if math.Abs(last-1) > 1e-9 {
		t.Fatalf("expected progress 1 at the end, got %f", last)
	}
}

func TestCanAdvanceBlocksRequiredQuestions(t *testing.T) {
	g := IntakeGraph()
	index, ok := g.IndexOf(QFullName)
	if !ok {
		t.Fatalf("missing question %q", QFullName)
	}

	if g.CanAdvance(index, Answers{}) {
		t.Fatalf("required question should block without an answer")
	}
	if g.CanAdvance(index, Answers{QFullName: "   "}) {
		t.Fatalf("required question should block on a blank answer")
	}
	if !g.CanAdvance(index, Answers{QFullName: "Maria Lopez"}) {
		t.Fatalf("required question should pass with an answer")
	}
}

func TestCanAdvanceAllowsSkippingOptionalQuestions(t *testing.T) {
	g := IntakeGraph()
	index, ok := g.IndexOf(QMotivation)
	if !ok {
		t.Fatalf("missing question %q", QMotivation)
	}
	if !g.CanAdvance(index, Answers{}) {
		t.Fatalf("optional question should never block")
	}
}

func TestCanAdvanceRequiresParseableNumber(t *testing.T) {
	g := IntakeGraph()
	index, ok := g.IndexOf(QAge)
	if !ok {
		t.Fatalf("missing question %q", QAge)
	}
	if g.CanAdvance(index, Answers{QAge: "not a number"}) {
		t.Fatalf("number question should block on non-numeric input")
	}
	if !g.CanAdvance(index, Answers{QAge: "32"}) {
		t.Fatalf("number question should accept numeric text")
	}
}
