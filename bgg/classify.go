package bgg

import "strings"

// classifyAPIError inspects a parsed document for the error shapes the service
// uses in place of a result. It returns nil when the document is a regular result.
//
//	<errors><error><message>Invalid username specified</message></error></errors>
//	<error><message>...</message></error>
//	<div class='messagebox error'>error reading chunk of file</div>
func classifyAPIError(doc *Node) error {
	for _, path := range [][]string{
		{"errors", "error", "message"},
		{"error", "message"},
	} {
		if msgs := doc.Path(path...); len(msgs) > 0 {
			return &APIError{Message: strings.TrimSpace(msgs[0].Text())}
		}
	}

	if div := doc.Child("div"); div != nil {
		return &APIError{Message: strings.TrimSpace(div.Text())}
	}

	return nil
}
