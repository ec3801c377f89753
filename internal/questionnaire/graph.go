package questionnaire

import "fmt"

type Kind string

const (
	KindShortText    Kind = "short_text"
	KindNumber       Kind = "number"
	KindEmail        Kind = "email"
	KindLongText     Kind = "long_text"
	KindBinary       Kind = "binary"
	KindSingleChoice Kind = "single_choice"
	KindMultiChoice  Kind = "multi_choice"
	KindSection      Kind = "section"
	KindTerminal     Kind = "terminal"
)

// Binary questions always answer with one of these two values. The locale
// tables only change how they are displayed.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// Condition gates a question's visibility on a previously given answer.
type Condition struct {
	QuestionID string `yaml:"question_id" json:"question_id"`
	Value      string `yaml:"value" json:"value"`
}

// Question is an immutable node of the intake graph. Options hold canonical
// values; display text is resolved through a TextTable keyed by ID.
type Question struct {
	ID        string     `yaml:"id" json:"id"`
	Kind      Kind       `yaml:"kind" json:"kind"`
	Options   []string   `yaml:"options,omitempty" json:"options,omitempty"`
	Required  bool       `yaml:"required,omitempty" json:"required,omitempty"`
	Condition *Condition `yaml:"condition,omitempty" json:"condition,omitempty"`
}

// Graph is the ordered, immutable question list. Order defines the default
// traversal sequence; the last question must be the terminal marker.
type Graph struct {
	questions []Question
	byID      map[string]int
}

func NewGraph(questions []Question) (*Graph, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("graph must contain at least one question")
	}
	if questions[len(questions)-1].Kind != KindTerminal {
		return nil, fmt.Errorf("last question must be the terminal marker, got %q", questions[len(questions)-1].Kind)
	}

	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question at index %d has no id", i)
		}
		if _, exists := byID[q.ID]; exists {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if q.Kind == KindBinary && len(q.Options) == 0 {
			questions[i].Options = []string{AnswerYes, AnswerNo}
		}
		byID[q.ID] = i
	}

	for i, q := range questions {
		if q.Condition == nil {
			continue
		}
		ref, ok := byID[q.Condition.QuestionID]
		if !ok {
			return nil, fmt.Errorf("question %q references unknown question %q", q.ID, q.Condition.QuestionID)
		}
		if ref >= i {
			return nil, fmt.Errorf("question %q references a later question %q", q.ID, q.Condition.QuestionID)
		}
	}

	return &Graph{questions: questions, byID: byID}, nil
}

func (g *Graph) Len() int {
	return len(g.questions)
}

func (g *Graph) Question(index int) Question {
	return g.questions[index]
}

func (g *Graph) IndexOf(id string) (int, bool) {
	i, ok := g.byID[id]
	return i, ok
}

func (g *Graph) QuestionByID(id string) (Question, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Question{}, false
	}
	return g.questions[i], true
}

// TerminalIndex is the index of the final (terminal) question.
func (g *Graph) TerminalIndex() int {
	return len(g.questions) - 1
}

func (g *Graph) IsTerminal(index int) bool {
	return index == g.TerminalIndex()
}

func (g *Graph) Questions() []Question {
	out := make([]Question, len(g.questions))
	copy(out, g.questions)
	return out
}
