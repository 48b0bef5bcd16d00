package result

// ProblemResponse is the JSON body rendered for a failed operation at the
// HTTP boundary. The status/title/type triple comes straight from the Error
// variant; no layer is allowed to invent a different mapping.
type ProblemResponse struct {
	Status int      `json:"status"`
	Code   string   `json:"code"`
	Title  string   `json:"title"`
	Type   string   `json:"type"`
	Detail string   `json:"detail,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// ToProblem converts e to its response representation.
func (e *Error) ToProblem() ProblemResponse {
	return ProblemResponse{
		Status: e.Status,
		Code:   e.Code,
		Title:  e.Title,
		Type:   e.Type,
		Detail: e.Description,
		Errors: e.Details,
	}
}
