package storygen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mathstory/mathstory/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(responses ...llm.MockResponse) (*LLMGenerator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	mock.Validate = true
	return New(mock, DefaultConfig()), mock
}

func TestGenerate_HappyPath(t *testing.T) {
	gen, mock := newGenerator(llm.MockResponse{Content: storyJSON(t, nil)})

	story, err := gen.Generate(context.Background(), "Et mysterium i Rundetårn")
	require.NoError(t, err)
	assert.Equal(t, "Signalet fra tårnet", story.Title)
	assert.Equal(t, 130.625, story.MathProblem.Answer)
	assert.Equal(t, "meter", story.MathProblem.Unit)
	assert.Equal(t, 1, story.ReadingQuestion.CorrectOptionIndex)
	assert.Len(t, story.ReadingQuestion.Options, OptionCount)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Same(t, StorySchema, req.Schema)
	assert.Equal(t, 0.9, req.Temperature)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Emne/Genre: Et mysterium i Rundetårn.")
}

func TestGenerate_BlankTopicUsesDefault(t *testing.T) {
	gen, mock := newGenerator(llm.MockResponse{Content: storyJSON(t, nil)})

	_, err := gen.Generate(context.Background(), "   ")
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Emne/Genre: "+DefaultTopic+".")
}

func TestGenerate_UnitOptional(t *testing.T) {
	gen, _ := newGenerator(llm.MockResponse{Content: storyJSON(t, func(m map[string]any) {
		delete(m["math_problem"].(map[string]any), "unit")
	})})

	story, err := gen.Generate(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, story.MathProblem.Unit)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		resp   func(t *testing.T) llm.MockResponse
		target func(err error) bool
	}{
		{
			name: "provider error",
			resp: func(*testing.T) llm.MockResponse {
				return llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("offline")}}
			},
			target: func(err error) bool { var e *llm.ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:   "empty text",
			resp:   func(*testing.T) llm.MockResponse { return llm.MockResponse{Content: nil} },
			target: func(err error) bool { return errors.Is(err, llm.ErrEmptyResponse) },
		},
		{
			name: "missing reading question",
			resp: func(t *testing.T) llm.MockResponse {
				return llm.MockResponse{Content: storyJSON(t, func(m map[string]any) { delete(m, "reading_question") })}
			},
			target: func(err error) bool {
				var e *llm.ErrInvalidResponse
				return errors.As(err, &e) && strings.Contains(err.Error(), "reading_question")
			},
		},
		{
			name: "answer is a string",
			resp: func(t *testing.T) llm.MockResponse {
				return llm.MockResponse{Content: storyJSON(t, func(m map[string]any) {
					m["math_problem"].(map[string]any)["answer"] = "42,5"
				})}
			},
			target: func(err error) bool { var e *llm.ErrInvalidResponse; return errors.As(err, &e) },
		},
		{
			name: "blank title",
			resp: func(t *testing.T) llm.MockResponse {
				return llm.MockResponse{Content: storyJSON(t, func(m map[string]any) { m["title"] = "  " })}
			},
			target: func(err error) bool {
				var e *ValidationError
				return errors.As(err, &e) && e.Validator == "structural"
			},
		},
		{
			name: "duplicate options",
			resp: func(t *testing.T) llm.MockResponse {
				return llm.MockResponse{Content: storyJSON(t, func(m map[string]any) {
					m["reading_question"].(map[string]any)["options"] = []string{"A", "B", "a", "C"}
				})}
			},
			target: func(err error) bool {
				var e *ValidationError
				return errors.As(err, &e) && e.Validator == "reading"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, mock := newGenerator(tt.resp(t))
			story, err := gen.Generate(context.Background(), "x")
			require.Error(t, err)
			assert.Nil(t, story)
			assert.True(t, tt.target(err), "unexpected error: %v", err)
			assert.Equal(t, 1, mock.CallCount(), "generation must not retry")
		})
	}
}

func TestGenerate_Purpose(t *testing.T) {
	st := &purposeRecorder{}
	cfg := DefaultConfig()
	cfg.Purpose = "story-cli"
	_, _ = New(st, cfg).Generate(context.Background(), "")
	assert.Equal(t, "story-cli", st.purpose)
}

type purposeRecorder struct{ purpose string }

func (p *purposeRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.purpose = llm.PurposeFrom(ctx)
	return nil, errors.New("stop")
}
func (p *purposeRecorder) Name() string    { return "recorder" }
func (p *purposeRecorder) ModelID() string { return "recorder" }
