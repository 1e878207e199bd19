package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/service"
)

func newSubmissionService(f *fixture) service.SubmissionService {
	return service.NewSubmissionService(f.catalog, f.answers)
}

func submitReq(questionID, answerID uint, attemptID *string, seconds int) dto.SubmitAnswerRequest {
	return dto.SubmitAnswerRequest{
		QuestionID: questionID,
		AnswerID:   answerID,
		AttemptID:  attemptID,
		StartTime:  testBase,
		EndTime:    testBase.Add(time.Duration(seconds) * time.Second),
	}
}

func TestSubmitAnswer(t *testing.T) {
	f := newFixture()
	svc := newSubmissionService(f)

	resp, err := svc.SubmitAnswer(1, submitReq(1, 1, nil, 30))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.QuestionID != 1 || resp.AnswerID != 1 || resp.UserID != 1 {
		t.Fatalf("unexpected submission: %+v", resp)
	}
}

func TestSubmitAnswerValidation(t *testing.T) {
	f := newFixture()
	svc := newSubmissionService(f)

	req := submitReq(1, 1, nil, 30)
	req.EndTime = req.StartTime.Add(-time.Second)
	if _, err := svc.SubmitAnswer(1, req); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error for end before start, got %v", err)
	}

	if _, err := svc.SubmitAnswer(1, submitReq(1, 1, strPtr("not-a-uuid"), 30)); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error for malformed attempt id, got %v", err)
	}

	// Answer 3 belongs to question 2, not question 1.
	if _, err := svc.SubmitAnswer(1, submitReq(1, 3, nil, 30)); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error for answer of another question, got %v", err)
	}

	if _, err := svc.SubmitAnswer(1, submitReq(999, 1, nil, 30)); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found for unknown question, got %v", err)
	}
	if _, err := svc.SubmitAnswer(1, submitReq(1, 999, nil, 30)); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found for unknown answer, got %v", err)
	}
}

func TestSubmitAnswerDuplicateWithinAttempt(t *testing.T) {
	f := newFixture()
	svc := newSubmissionService(f)
	attempt := uuid.NewString()

	if _, err := svc.SubmitAnswer(1, submitReq(1, 1, &attempt, 30)); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(1, submitReq(1, 2, &attempt, 40)); !errors.Is(err, apperror.ErrDuplicateSubmission) {
		t.Fatalf("expected duplicate-submission error, got %v", err)
	}

	// Same question in a fresh attempt is a new submission.
	retake := uuid.NewString()
	if _, err := svc.SubmitAnswer(1, submitReq(1, 2, &retake, 40)); err != nil {
		t.Fatalf("retake submit failed: %v", err)
	}
	// Another user answering the same attempt's question is fine too.
	if _, err := svc.SubmitAnswer(2, submitReq(1, 1, &attempt, 25)); err != nil {
		t.Fatalf("other user's submit failed: %v", err)
	}
}

func TestSubmitAnswerWithoutAttemptMayRepeat(t *testing.T) {
	f := newFixture()
	svc := newSubmissionService(f)

	if _, err := svc.SubmitAnswer(1, submitReq(1, 1, nil, 30)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(1, submitReq(1, 2, nil, 40)); err != nil {
		t.Fatalf("repeat submit without attempt failed: %v", err)
	}
}

func TestChallengeAttemptStats(t *testing.T) {
	f := newFixture()
	svc := newSubmissionService(f)
	attempt := uuid.NewString()

	if _, err := svc.SubmitAnswer(1, submitReq(1, 1, &attempt, 30)); err != nil { // correct, 10 pts
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(1, submitReq(2, 4, &attempt, 20)); err != nil { // incorrect
		t.Fatalf("submit failed: %v", err)
	}
	// A different attempt must not leak into the stats.
	other := uuid.NewString()
	if _, err := svc.SubmitAnswer(1, submitReq(2, 3, &other, 10)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	stats, err := svc.ChallengeAttemptStats(1, 1, &attempt)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.CorrectAnswers != 1 || stats.IncorrectAnswers != 1 {
		t.Fatalf("expected 1/1, got %+v", stats)
	}
	if stats.TotalPoints != "10.0000" || stats.TotalTime != 50 {
		t.Fatalf("expected 10.0000 pts over 50s, got %+v", stats)
	}
	if stats.Ratio != "0.2000" {
		t.Fatalf("expected ratio 0.2000, got %q", stats.Ratio)
	}

	// Without an attempt filter all three submissions count.
	all, err := svc.ChallengeAttemptStats(1, 1, nil)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if all.CorrectAnswers != 2 || all.IncorrectAnswers != 1 {
		t.Fatalf("expected 2/1 across attempts, got %+v", all)
	}
}

func TestCorrectnessDerivedAtReadTime(t *testing.T) {
	f := newFixture()
	svc := newSubmissionService(f)

	if _, err := svc.SubmitAnswer(1, submitReq(1, 2, nil, 30)); err != nil { // incorrect today
		t.Fatalf("submit failed: %v", err)
	}

	stats, err := svc.ChallengeAttemptStats(1, 1, nil)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.CorrectAnswers != 0 || stats.IncorrectAnswers != 1 {
		t.Fatalf("expected 0/1 before the fix, got %+v", stats)
	}

	// An admin repoints the correct answer; the stored submission is
	// rescored on the next read.
	f.catalog.SetCorrectAnswer(1, uintPtr(2))

	stats, err = svc.ChallengeAttemptStats(1, 1, nil)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.CorrectAnswers != 1 || stats.TotalPoints != "10.0000" {
		t.Fatalf("expected rescored 1 correct with 10.0000 pts, got %+v", stats)
	}
}
