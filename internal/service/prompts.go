package service

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/UDARAS8/bugtracker/internal/model"
)

var promptFuncs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": strings.Join,
}

func mustPrompt(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(promptFuncs).Parse(strings.TrimLeft(text, "\n")))
}

var analyzeBugPrompt = mustPrompt("analyze_bug", `
Analyze this QA bug report and provide insights:

Title: {{.Title}}
Description: {{.Description}}
Severity: {{.Severity}}
Priority: {{.Priority}}
Environment: {{.Environment}}

Steps to reproduce:
{{range $i, $step := .Steps}}{{inc $i}}. {{$step}}
{{end}}
Expected Result: {{.ExpectedResult}}
Actual Result: {{.ActualResult}}
Tags: {{join .Tags ", "}}

Please provide:
1. Root cause analysis
2. Potential impact assessment
3. Suggested fix or workaround
4. Prevention strategies
5. Related areas to test

Keep your response concise but comprehensive.
`)

type scanPromptData struct {
	TotalBugs  int
	Issues     []model.BugIssues
	Duplicates []model.DuplicateGroup
	Open       int
	InProgress int
	Resolved   int
	Closed     int
	Unassigned int
}

var scanBugsPrompt = mustPrompt("scan_bugs", `
Analyze this QA bug tracking data and provide recommendations:

Total Bugs: {{.TotalBugs}}
Issues Found:
{{range .Issues}}- Bug "{{.Title}}": {{join .Issues ", "}}
{{end}}
Duplicates Found: {{len .Duplicates}}
{{range .Duplicates}}- {{.Type}}: {{.Value}}
{{end}}
Bug Status Distribution:
- Open: {{.Open}}
- In Progress: {{.InProgress}}
- Resolved: {{.Resolved}}
- Closed: {{.Closed}}

Unassigned Bugs: {{.Unassigned}}

Please provide:
1. Overall quality assessment of bug reports
2. Specific recommendations for improvement
3. Suggested workflow improvements
4. Priority actions to take

Keep it actionable and concise.
`)

type assigneePromptData struct {
	Bug       model.Bug
	Assignees []string
	Similar   []model.Bug
}

var suggestAssigneePrompt = mustPrompt("suggest_assignee", `
Based on this bug report, suggest the most appropriate status and responsible person:

Bug Details:
Title: {{.Bug.Title}}
Description: {{.Bug.Description}}
Severity: {{.Bug.Severity}}
Priority: {{.Bug.Priority}}
Environment: {{.Bug.Environment}}
Current Status: {{or .Bug.Status "Not set"}}
Current Assignee: {{or .Bug.AssigneeName "Not assigned"}}

Available team members who have worked on bugs: {{join .Assignees ", "}}

Similar bugs in the system:
{{range .Similar}}- {{.Title}} ({{or .Status "no status"}}, assigned to {{or .AssigneeName "unassigned"}})
{{end}}
Please suggest:
1. Most appropriate status (open/in-progress/resolved/closed)
2. Best person to assign this to (from available team members or suggest role)
3. Reasoning for your suggestions

Format as JSON: {"suggestedStatus": "status", "suggestedAssignee": "person", "reasoning": "explanation"}
`)

var bugSummaryPrompt = mustPrompt("bug_summary", `
Generate a concise, professional summary for this bug report:

Title: {{.Title}}
Description: {{.Description}}
Severity: {{.Severity}}
Priority: {{.Priority}}
Status: {{.Status}}
Environment: {{.Environment}}

Create a 2-3 sentence executive summary that captures:
- What the issue is
- Its impact/severity
- Current status

Keep it under 100 words and professional.
`)

type reportPromptData struct {
	TotalBugs   int
	OpenBugs    int
	Critical    int
	High        int
	Medium      int
	Low         int
	TotalTests  int
	PassedTests int
	FailedTests int
}

var qaReportPrompt = mustPrompt("qa_report", `
Generate a QA report summary based on this data:

Total Bugs: {{.TotalBugs}}
Open Bugs: {{.OpenBugs}}
Critical Bugs: {{.Critical}}

Total Test Cases: {{.TotalTests}}
Passed Tests: {{.PassedTests}}
Failed Tests: {{.FailedTests}}

Bug Severity Distribution:
- Critical: {{.Critical}}
- High: {{.High}}
- Medium: {{.Medium}}
- Low: {{.Low}}

Please provide:
1. Overall quality assessment
2. Key risk areas
3. Recommendations for improvement
4. Testing priorities
5. Release readiness assessment

Keep it professional and actionable.
`)

type testCasePromptData struct {
	Feature     string
	Description string
}

var suggestTestCasesPrompt = mustPrompt("suggest_test_cases", `
Generate comprehensive test cases for this feature:

Feature: {{.Feature}}
Description: {{.Description}}

Please provide 5-8 test cases covering:
1. Happy path scenarios
2. Edge cases
3. Error conditions
4. Boundary testing
5. Integration points

For each test case, provide:
- Test name
- Description
- Steps to execute
- Expected result
- Priority (low/medium/high)
- Category

Format as JSON array with objects containing: name, description, steps (array), expectedResult, priority, category.
`)

func renderPrompt(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", t.Name(), err)
	}
	return buf.String(), nil
}
