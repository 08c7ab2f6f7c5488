package jobscout

import "strings"

// Classification constants.
const (
	// MaxFitScore is the upper bound a fit score is clamped to.
	MaxFitScore = 100

	// titleMatchBonus is awarded when the role keyword appears in the title.
	titleMatchBonus = 40

	// keywordBonus is awarded for each vocabulary keyword found in the
	// title or description.
	keywordBonus = 5
)

// fitKeywords is the fixed vocabulary scanned for relevance tags.
// Order matters: tags are emitted in this order, not input order.
var fitKeywords = []string{
	"ROS",
	"ROS 2",
	"robotics",
	"autonomy",
	"controls",
	"control",
	"reinforcement learning",
	"rl",
	"simulation",
	"control theory",
	"optimization",
	"MPC",
	"SLAM",
	"navigation",
	"state estimation",
	"localization",
	"Python",
	"C++",
	"machine learning",
}

// FitKeywords returns a copy of the classification vocabulary in scan order.
func FitKeywords() []string {
	out := make([]string, len(fitKeywords))
	copy(out, fitKeywords)
	return out
}

// Classify computes a relevance score and tag set for a listing. The score
// starts at zero, gains titleMatchBonus when roleKeyword is a case-insensitive
// substring of the title, and keywordBonus for each vocabulary keyword found
// in the title or description. Each keyword contributes at most one tag, in
// vocabulary order. The score is clamped to MaxFitScore. Classify is pure:
// the same inputs always produce the same outputs.
func Classify(title, description, roleKeyword string) (int, []string) {
	score := 0
	var tags []string

	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	if strings.Contains(titleLower, strings.ToLower(roleKeyword)) {
		score += titleMatchBonus
	}

	for _, kw := range fitKeywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(titleLower, kwLower) || strings.Contains(descLower, kwLower) {
			tags = append(tags, kw)
			score += keywordBonus
		}
	}

	if score > MaxFitScore {
		score = MaxFitScore
	}

	return score, tags
}
