package keywords

import "fmt"

var suggestionTemplates = [...]string{
	"Add \"%s\" to your skills section if you have hands-on experience with it.",
	"Mention \"%s\" in an experience bullet that shows where and how you used it.",
	"Reference \"%s\" in your professional summary to signal it early.",
	"Include a project that demonstrates \"%s\" with a concrete, measurable outcome.",
}

// Suggest returns the fixed integration hints for keyword.
func Suggest(keyword string) []string {
	out := make([]string, len(suggestionTemplates))
	for i, t := range suggestionTemplates {
		out[i] = fmt.Sprintf(t, keyword)
	}
	return out
}
