package curriculum

// courseSchema defines the JSON schema a curriculum file must satisfy
// before it is decoded into the Course model.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string"},
		"modules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string"},
					"order": map[string]any{"type": "integer"},
					"lessons": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    lessonSchema,
					},
				},
				"required":             []any{"id", "order", "lessons"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "modules"},
	"additionalProperties": false,
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":         map[string]any{"type": "string", "minLength": 1},
		"title":      map[string]any{"type": "string"},
		"order":      map[string]any{"type": "integer"},
		"quiz":       quizSchema,
		"assignment": assignmentSchema,
	},
	"required":             []any{"id", "order"},
	"additionalProperties": false,
}

var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                 map[string]any{"type": "string", "minLength": 1},
		"title":              map[string]any{"type": "string"},
		"passing_score":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"max_attempts":       map[string]any{"type": "integer", "minimum": 1},
		"time_limit_seconds": map[string]any{"type": "integer", "minimum": 1},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "minLength": 1},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"single-choice", "multi-choice", "true-false", "free-text"},
					},
					"prompt":          map[string]any{"type": "string"},
					"choices":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"correct_answer":  map[string]any{"type": "string"},
					"correct_answers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"points":          map[string]any{"type": "integer", "minimum": 0},
				},
				"required":             []any{"id", "kind"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "passing_score", "max_attempts", "questions"},
	"additionalProperties": false,
}

var assignmentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":           map[string]any{"type": "string", "minLength": 1},
		"title":        map[string]any{"type": "string"},
		"instructions": map[string]any{"type": "string"},
	},
	"required":             []any{"id"},
	"additionalProperties": false,
}
