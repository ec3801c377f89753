package questionnaire

// IsVisible reports whether a question should currently be shown: always when
// it has no condition, otherwise only when the referenced answer equals the
// expected value.
func IsVisible(q Question, answers Answers) bool {
	if q.Condition == nil {
		return true
	}
	return answers.Text(q.Condition.QuestionID) == q.Condition.Value
}

// NextVisibleIndex scans forward from index+1 and returns the first visible
// question. The terminal marker is unconditional, so traversal always lands
// there when everything in between is hidden; calling from the terminal index
// returns the terminal index again.
func (g *Graph) NextVisibleIndex(index int, answers Answers) int {
	for i := index + 1; i < len(g.questions); i++ {
		if IsVisible(g.questions[i], answers) {
			return i
		}
	}
	return g.TerminalIndex()
}

// PreviousVisibleIndex scans backward from index-1 for the first visible
// question. ok is false when none exists; back-navigation is then a no-op.
func (g *Graph) PreviousVisibleIndex(index int, answers Answers) (int, bool) {
	for i := index - 1; i >= 0; i-- {
		if IsVisible(g.questions[i], answers) {
			return i, true
		}
	}
	return index, false
}

// Advance resolves the index to move to after answering the question at
// index. A binary question answered affirmatively jumps straight to the next
// question conditioned on that answer, bypassing unrelated visible questions,
// so detail sub-questions appear immediately. Everything else falls through
// to NextVisibleIndex.
func (g *Graph) Advance(index int, answers Answers) int {
	q := g.questions[index]
	if q.Kind == KindBinary && answers.Text(q.ID) == AnswerYes {
		for i := index + 1; i < len(g.questions); i++ {
			c := g.questions[i].Condition
			if c != nil && c.QuestionID == q.ID && c.Value == AnswerYes {
				return i
			}
		}
	}
	return g.NextVisibleIndex(index, answers)
}

// Complete reports whether no further visible question exists after index,
// i.e. the session has reached (or would next reach) the terminal marker.
func (g *Graph) Complete(index int, answers Answers) bool {
	return g.IsTerminal(index) || g.IsTerminal(g.NextVisibleIndex(index, answers))
}

// Progress is answeredCount over the count of currently visible questions,
// excluding section and terminal markers. It is relative to the live answer
// set: heavily skipped sessions finish with fewer visible questions, not a
// stuck fraction.
func (g *Graph) Progress(answers Answers) float64 {
	visible := 0
	answered := 0
	for _, q := range g.questions {
		if q.Kind == KindSection || q.Kind == KindTerminal {
			continue
		}
		if !IsVisible(q, answers) {
			continue
		}
		visible++
		if isAnswered(q, answers) {
			answered++
		}
	}
	if visible == 0 {
		return 0
	}
	return float64(answered) / float64(visible)
}

// CanAdvance reports whether the question at index allows forward navigation
// given the current answers. Only required questions block: a binary needs
// one of its two fixed values, a multi-choice needs at least one label, a
// number needs a parseable value, everything else non-empty text.
func (g *Graph) CanAdvance(index int, answers Answers) bool {
	q := g.questions[index]
	if !q.Required {
		return true
	}
	return isAnswered(q, answers)
}

func isAnswered(q Question, answers Answers) bool {
	if !answers.Has(q.ID) {
		return false
	}
	switch q.Kind {
	case KindBinary:
		text := answers.Text(q.ID)
		return text == AnswerYes || text == AnswerNo
	case KindMultiChoice:
		return len(answers.Labels(q.ID)) > 0
	case KindNumber:
		_, ok := answers.Number(q.ID)
		return ok
	case KindSection, KindTerminal:
		return true
	default:
		return answers.Text(q.ID) != ""
	}
}
