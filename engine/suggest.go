package engine

import "strings"

var commonIssueTitles = []string{
	"Pothole on main road needs repair",
	"Streetlight not working",
	"Garbage not collected for 3 days",
	"Water leakage from pipe",
	"Broken drainage cover on footpath",
	"Illegal parking blocking road",
	"Tree branches blocking road",
	"Road accident prone area needs attention",
	"Public toilet not maintained",
	"Stray animals causing nuisance",
}

// Suggestions returns up to five common issue titles matching the
// partial text. Fewer than two characters (or no match) yields the
// first five defaults.
func Suggestions(partial string) []string {
	if len(partial) < 2 {
		return commonIssueTitles[:5]
	}

	needle := strings.ToLower(partial)
	matches := make([]string, 0, 5)
	for _, title := range commonIssueTitles {
		if strings.Contains(strings.ToLower(title), needle) {
			matches = append(matches, title)
			if len(matches) == 5 {
				break
			}
		}
	}
	if len(matches) == 0 {
		return commonIssueTitles[:5]
	}
	return matches
}
