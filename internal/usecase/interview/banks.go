package interview

import "github.com/mockmind/mockmind-api/internal/domain/entities"

// QuestionBanks holds the static question sets used when a session is created
// without tailored questions.
type QuestionBanks struct {
	Technical  []string
	Behavioral []string
	Mixed      []string
}

// DefaultQuestionBanks returns the built-in question sets
func DefaultQuestionBanks() QuestionBanks {
	return QuestionBanks{
		Technical: []string{
			"Explain how you would optimize a slow database query. Walk me through your debugging process.",
			"Describe a challenging production bug you've encountered. How did you approach fixing it?",
			"Design a system to handle millions of concurrent users. What are the key considerations?",
			"Explain the difference between SQL and NoSQL databases. When would you use each?",
			"Walk me through your approach to code review and maintaining code quality in a team.",
		},
		Behavioral: []string{
			"Tell me about a time you disagreed with a team member. How did you handle it?",
			"Describe a challenging project you completed and the obstacles you overcame.",
			"Give me an example of when you showed leadership outside of your formal role.",
			"Tell me about a time you failed. What did you learn from it?",
			"How do you prioritize your work when you have multiple competing deadlines?",
		},
		Mixed: []string{
			"Explain a recent technical project and the leadership decisions you made.",
			"Describe how you debug complex issues and communicate findings to your team.",
			"Tell me about a time you had to learn a new technology. How did you approach it?",
			"Design and discuss a system you've built, focusing on your decision-making process.",
			"How do you balance technical excellence with business needs in your work?",
		},
	}
}

// ForType returns the bank matching the interview type, defaulting to the
// mixed set for unknown values.
func (b QuestionBanks) ForType(t entities.InterviewType) []string {
	switch t {
	case entities.InterviewTypeTechnical:
		return b.Technical
	case entities.InterviewTypeBehavioral:
		return b.Behavioral
	default:
		return b.Mixed
	}
}
