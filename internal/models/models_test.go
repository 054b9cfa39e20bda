package models

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"employer":  RoleEmployer,
		"candidate": RoleCandidate,
		"admin":     RoleCandidate,
		"":          RoleCandidate,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusApplied, StatusScreening, StatusInterviewScheduled, StatusRejected, StatusHired} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ApplicationStatus("pending").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestTestRedactedLeavesOriginalIntact(t *testing.T) {
	orig := Test{Questions: []Question{
		{ID: "q1", QuestionText: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
	}}

	red := orig.Redacted()

	if red.Questions[0].CorrectAnswer != "" {
		t.Fatalf("expected correct answer to be removed")
	}
	if orig.Questions[0].CorrectAnswer != "4" {
		t.Fatalf("redaction must not mutate the source test")
	}
	if len(red.Questions[0].Options) != 2 {
		t.Fatalf("expected options to be kept, got %v", red.Questions[0].Options)
	}
}

func TestInterviewPatchEmpty(t *testing.T) {
	if !(InterviewPatch{}).Empty() {
		t.Fatalf("zero patch should be empty")
	}
	fb := "great"
	if (InterviewPatch{Feedback: &fb}).Empty() {
		t.Fatalf("patch with feedback should not be empty")
	}
}

func TestSubmitTestRequestValidate(t *testing.T) {
	cases := map[string]struct {
		req     SubmitTestRequest
		wantErr bool
	}{
		"missing answers": {SubmitTestRequest{ApplicationID: "a1"}, true},
		"empty answers":   {SubmitTestRequest{ApplicationID: "a1", Answers: []SubmittedAnswer{}}, false},
		"missing app":     {SubmitTestRequest{Answers: []SubmittedAnswer{}}, true},
	}
	for name, tc := range cases {
		if err := tc.req.Validate(); (err != nil) != tc.wantErr {
			t.Fatalf("%s: Validate() = %v, wantErr %v", name, err, tc.wantErr)
		}
	}
}

func TestUpdateTestRequestValidate(t *testing.T) {
	if err := (&UpdateTestRequest{}).Validate(); err != nil {
		t.Fatalf("omitted questions should be accepted: %v", err)
	}
	if err := (&UpdateTestRequest{Questions: []Question{}}).Validate(); err == nil {
		t.Fatalf("an empty question list should be rejected")
	}
}
