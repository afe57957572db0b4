package storygen

import "github.com/mathstory/mathstory/internal/llm"

// OptionCount is the number of reading-question options.
const OptionCount = 4

// StorySchema is the structured-output contract for story generation.
var StorySchema = &llm.Schema{
	Name:        "math-story",
	Description: "A Danish story with a real-world fact, a math word problem and a reading-comprehension question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A catchy title for the story in Danish.",
			},
			"story_text": map[string]any{
				"type":        "string",
				"description": "The main story content, 500-700 words, written in Danish, exciting for a 15-year-old girl.",
			},
			"real_world_fact": map[string]any{
				"type":        "string",
				"description": "A cool, true fact from the real world that was woven into the story (in Danish).",
			},
			"math_problem": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "A math word problem related to the story suitable for a 9th grade student (in Danish).",
					},
					"answer": map[string]any{
						"type":        "number",
						"description": "The numeric answer to the math problem.",
					},
					"unit": map[string]any{
						"type":        "string",
						"description": "The unit of the answer (e.g., 'meter', 'kroner', 'år'), if applicable.",
					},
				},
				"required": []any{"question", "answer"},
			},
			"reading_question": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "A reading comprehension question in Danish checking a specific detail from the story text.",
					},
					"options": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    OptionCount,
						"maxItems":    OptionCount,
						"description": "4 possible answers in Danish, only one is correct.",
					},
					"correct_option_index": map[string]any{
						"type":        "integer",
						"minimum":     0,
						"maximum":     OptionCount - 1,
						"description": "The index (0-3) of the correct option in the options array.",
					},
				},
				"required": []any{"question", "options", "correct_option_index"},
			},
		},
		"required":         []any{"title", "story_text", "real_world_fact", "math_problem", "reading_question"},
		"propertyOrdering": []any{"title", "story_text", "real_world_fact", "math_problem", "reading_question"},
	},
}
