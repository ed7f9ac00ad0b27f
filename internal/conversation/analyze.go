package conversation

import (
	"github.com/fysioscribe/dcsph-engine/internal/pattern"
)

// #region analyze

// analyzedCategories are the complaint aspects the dialogue should
// cover before resolution is attempted. Each is checked independently.
var analyzedCategories = []pattern.Category{
	pattern.CategoryLocation,
	pattern.CategoryPathology,
	pattern.CategoryTiming,
	pattern.CategoryMechanism,
}

// AnalyzeMissingInformation scans the concatenated user query against
// the term tables and reports unaddressed categories, plus each
// clarifying question paired with the reply that followed it.
func (s *Store) AnalyzeMissingInformation(id string) (MissingInfo, error) {
	full, err := s.BuildCompleteQuery(id)
	if err != nil {
		return MissingInfo{}, err
	}
	conv, err := s.Get(id)
	if err != nil {
		return MissingInfo{}, err
	}

	analysis := pattern.Analyze(full)

	var info MissingInfo
	for _, cat := range analyzedCategories {
		if len(analysis.Matches[cat]) == 0 {
			info.MissingCategories = append(info.MissingCategories, string(cat))
		}
	}
	info.AnsweredQuestions = pairQuestionsWithAnswers(conv.Messages)
	return info, nil
}

// pairQuestionsWithAnswers walks the history and pairs each clarifying
// question with the next user message, when one exists.
func pairQuestionsWithAnswers(messages []Message) []QuestionAnswer {
	var out []QuestionAnswer
	for i, m := range messages {
		if m.Type != TypeClarification {
			continue
		}
		qa := QuestionAnswer{Question: m.Content}
		for _, next := range messages[i+1:] {
			if next.Role == RoleUser {
				qa.Answer = next.Content
				break
			}
		}
		out = append(out, qa)
	}
	return out
}

// #endregion
