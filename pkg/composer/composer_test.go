package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-speechlet/pkg/ssml"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	infoMessages []string
	inputPos     int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if val == "" && cfg.Default != "" {
		return cfg.Default, nil
	}
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func actionIndex(t *testing.T, action string) int {
	t.Helper()
	idx := indexOf(actions, action)
	if idx < 0 {
		t.Fatalf("unknown action %q", action)
	}
	return idx
}

func TestRunComposesDocument(t *testing.T) {
	digits := indexOf(ssml.Interpretations(), "digits")
	driver := &stubDriver{
		selectIdx: []int{
			actionIndex(t, ActionSentence),
			actionIndex(t, ActionEmphasis), 1,
			actionIndex(t, ActionPause),
			actionIndex(t, ActionSayAs), digits,
			actionIndex(t, ActionList), 1,
			actionIndex(t, ActionWhisper),
			actionIndex(t, ActionDone),
		},
		inputs: []string{
			"Hello",
			"now",
			"",
			"42",
			"eggs, , milk",
			"bye",
		},
	}

	b, err := New(WithPromptDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := ssml.New().
		Sentence("Hello").
		Emphasis("now", ssml.EmphasisOptions{Level: "strong"}).
		Pause(ssml.DefaultPause).
		SayAs("42", ssml.SayAsOptions{InterpretAs: "digits"})
	if _, err := want.ReadAsNumberedList([]string{"eggs", "milk"}, ssml.ListOptions{}); err != nil {
		t.Fatalf("build expectation: %v", err)
	}
	want.Whisper("bye")

	if diff := cmp.Diff(want.Output(), b.Output()); diff != "" {
		t.Fatalf("composed output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunEmphasisWithoutLevel(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{actionIndex(t, ActionEmphasis), 0, actionIndex(t, ActionDone)},
		inputs:    []string{"calm"},
	}
	b, err := New(WithPromptDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := b.Output(); got != "<emphasis>calm</emphasis>" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunPreview(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{actionIndex(t, ActionSay), actionIndex(t, ActionDone)},
		inputs:    []string{"hi"},
	}
	if _, err := New(WithPromptDriver(driver), WithPreview(true)).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff([]string{"<speak>hi</speak>"}, driver.infoMessages); diff != "" {
		t.Fatalf("preview mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{actionIndex(t, ActionParagraph)}}
	if _, err := New(WithPromptDriver(driver)).Run(context.Background()); err == nil {
		t.Fatalf("expected error when input runs out")
	}

	abort := &abortDriver{}
	if _, err := New(WithPromptDriver(abort)).Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRunRejectsInvalidChoice(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{len(actions)}}
	if _, err := New(WithPromptDriver(driver)).Run(context.Background()); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
}

func TestSplitItems(t *testing.T) {
	if diff := cmp.Diff([]string{"a", "b c"}, splitItems(" a ,, b c ,")); diff != "" {
		t.Fatalf("split mismatch (-want +got):\n%s", diff)
	}
}

type abortDriver struct{ stubDriver }

func (a *abortDriver) Select(context.Context, SelectConfig) (int, error) {
	return 0, ErrAborted
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("other errors should pass through, got %v", err)
	}
}
