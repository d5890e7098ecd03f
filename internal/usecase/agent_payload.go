package usecase

import (
	"fmt"
	"strings"
	"time"

	"job-use-backend/internal/domain"
)

// agentPayload is the simulated autofill record stored on a new application.
type agentPayload struct {
	Summary   string
	Questions []domain.DetectedQuestion
	Traces    []domain.AgentTrace
}

type formStep struct {
	action  string
	element string
	value   string
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func experienceBucket(years float64) string {
	switch {
	case years < 1:
		return "Less than 1 year"
	case years < 3:
		return "1-2 years"
	case years < 6:
		return "3-5 years"
	}
	return "6+ years"
}

// newAgentPayload builds the form answers and step trace from the candidate
// profile. Trace timestamps start at now and advance one second per step.
func newAgentPayload(c *domain.Candidate, job *domain.Job, now time.Time) agentPayload {
	resume := "Not provided"
	if c.CVUploaded {
		resume = "resume.pdf"
	}
	years := experienceBucket(c.Experience)
	today := now.Format("01/02/2006")

	questions := []domain.DetectedQuestion{
		{Question: "Legal First Name", Answer: c.FirstName, FieldType: "text"},
		{Question: "Legal Last Name", Answer: c.LastName, FieldType: "text"},
		{Question: "Email", Answer: c.Email, FieldType: "email"},
		{Question: "Phone", Answer: c.Phone, FieldType: "tel"},
		{Question: "Upload Resume", Answer: resume, FieldType: "file"},
		{Question: "Postal Code (ZIP)", Answer: c.PostCode, FieldType: "text"},
		{Question: "Country", Answer: c.Country, FieldType: "dropdown"},
		{Question: "State / County", Answer: c.County, FieldType: "dropdown"},
		{Question: "Over age 18?", Answer: yesNo(c.Age >= 18), FieldType: "radio"},
		{Question: "Eligible to work?", Answer: yesNo(c.EligibilityToWork), FieldType: "radio"},
		{Question: "Require visa sponsorship?", Answer: yesNo(!c.EligibilityToWork), FieldType: "radio"},
		{Question: "Current job title", Answer: c.CurrentJobTitle, FieldType: "text"},
		{Question: fmt.Sprintf("Why do you want to work at %s?", job.Company), Answer: c.ProfileSummary, FieldType: "textarea"},
		{Question: "Years of experience in related role", Answer: years, FieldType: "dropdown"},
		{Question: "Today's Date", Answer: today, FieldType: "text"},
	}

	steps := []formStep{
		{"NAVIGATE", "application_form", fmt.Sprintf("Navigating to %s application page", job.Title)},
		{"FILL", "input[name='firstName']", c.FirstName},
		{"FILL", "input[name='lastName']", c.LastName},
		{"FILL", "input[name='email']", c.Email},
		{"FILL", "input[name='phone']", c.Phone},
		{"FILL", "input[name='postalCode']", c.PostCode},
		{"SELECT", "select[name='country']", c.Country},
		{"SELECT", "radio[name='over18']", yesNo(c.Age >= 18)},
		{"SELECT", "radio[name='eligibleToWork']", yesNo(c.EligibilityToWork)},
		{"SELECT", "radio[name='visaSponsorship']", yesNo(!c.EligibilityToWork)},
		{"GENERATE", "textarea[name='motivation']", "Generated response based on profile"},
		{"SELECT", "select[name='yearsExperience']", years},
		{"FILL", "input[name='date']", today},
		{"SUBMIT", "button[type='submit']", "Application submitted successfully"},
	}

	traces := make([]domain.AgentTrace, 0, len(steps))
	for i, s := range steps {
		value := s.value
		traces = append(traces, domain.AgentTrace{
			Timestamp: now.Add(time.Duration(i) * time.Second).UTC().Format(time.RFC3339),
			Action:    s.action,
			Element:   s.element,
			Value:     &value,
			Success:   true,
		})
	}

	counts := map[string]int{}
	for _, q := range questions {
		counts[q.FieldType]++
	}
	textInputs := counts["text"] + counts["email"] + counts["tel"]

	var sb strings.Builder
	sb.WriteString("Final Result:\n")
	fmt.Fprintf(&sb, "Successfully completed the %s application form at %s with the following actions:\n", job.Title, job.Company)
	fmt.Fprintf(&sb, "- Filled %d text input fields\n", textInputs)
	if c.CVUploaded {
		sb.WriteString("- Uploaded resume document and verified upload\n")
	}
	fmt.Fprintf(&sb, "- Selected %d radio button options\n", counts["radio"])
	fmt.Fprintf(&sb, "- Completed %d dropdown selections\n", counts["dropdown"])
	fmt.Fprintf(&sb, "- Answered %d text area question (profile summary)\n", counts["textarea"])
	fmt.Fprintf(&sb, "- Total fields completed: %d\n", len(questions))
	sb.WriteString("- Form submitted: Yes")

	return agentPayload{
		Summary:   sb.String(),
		Questions: questions,
		Traces:    traces,
	}
}
