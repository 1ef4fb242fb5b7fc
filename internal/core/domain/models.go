package domain

// Group tells whether a check gates overall readiness.
type Group string

const (
	GroupRequired Group = "required"
	GroupOptional Group = "optional"
)

// NotConfiguredMessage is reported for a required key that is missing or
// still holds an example value.
const NotConfiguredMessage = "Not configured (using example value)"

// Verdict is the outcome of a single validator run.
type Verdict struct {
	OK      bool
	Message string
}

// Pass builds a successful verdict.
func Pass(msg string) Verdict { return Verdict{OK: true, Message: msg} }

// Fail builds a failed verdict.
func Fail(msg string) Verdict { return Verdict{OK: false, Message: msg} }

// Result is the verdict recorded for one checked key.
type Result struct {
	Key     string `json:"key"`
	Group   Group  `json:"group"`
	OK      bool   `json:"status"`
	Message string `json:"message"`
}

// Report collects the results of one validation run in checklist order.
type Report struct {
	Required []Result `json:"required"`
	Optional []Result `json:"optional"`
}

// Add appends r to the section matching its group.
func (r *Report) Add(res Result) {
	if res.Group == GroupRequired {
		r.Required = append(r.Required, res)
		return
	}
	r.Optional = append(r.Optional, res)
}

// Ready reports whether every required result passed. Optional results
// never affect it.
func (r *Report) Ready() bool {
	for _, res := range r.Required {
		if !res.OK {
			return false
		}
	}
	return true
}
