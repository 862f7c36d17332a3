package extract

import (
	"encoding/json"
	"strings"

	"quizforge/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionSchemaURL = "schema://question.json"

// questionSchema checks element types only. Option membership of the
// correct answer is checked by domain.QuestionRecord.Valid.
const questionSchemaJSON = `{
	"type": "object",
	"required": ["questionText", "options", "correctAnswer"],
	"properties": {
		"questionText": {"type": "string", "minLength": 1},
		"options": {
			"type": "array",
			"minItems": 4,
			"maxItems": 4,
			"items": {"type": "string"}
		},
		"correctAnswer": {"type": "string"}
	}
}`

var questionSchema = mustCompileQuestionSchema()

func mustCompileQuestionSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionSchemaJSON))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(questionSchemaURL, doc); err != nil {
		panic(err)
	}
	return c.MustCompile(questionSchemaURL)
}

// Questions decodes a JSON array of question records. Elements that fail the
// schema or whose correct answer is not one of their options are dropped; an
// array with no valid element does not decode.
var Questions Shape[[]domain.QuestionRecord] = questionsShape{}

type questionsShape struct{}

func (questionsShape) Decode(text string) ([]domain.QuestionRecord, bool) {
	var items []any
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}

	records := make([]domain.QuestionRecord, 0, len(items))
	for _, item := range items {
		record, ok := decodeQuestion(item)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, false
	}
	return records, true
}

func decodeQuestion(item any) (domain.QuestionRecord, bool) {
	if err := questionSchema.Validate(item); err != nil {
		return domain.QuestionRecord{}, false
	}

	obj := item.(map[string]any)
	rawOptions := obj["options"].([]any)
	options := make([]string, len(rawOptions))
	for i, o := range rawOptions {
		options[i] = o.(string)
	}

	record := domain.QuestionRecord{
		QuestionText:  obj["questionText"].(string),
		Options:       options,
		CorrectAnswer: obj["correctAnswer"].(string),
	}
	return record, record.Valid()
}

// Explanation decodes free text. A JSON string literal is unquoted; any other
// text is taken as-is. Only empty text fails.
var Explanation Shape[string] = explanationShape{}

type explanationShape struct{}

func (explanationShape) Decode(text string) (string, bool) {
	var quoted string
	if err := json.Unmarshal([]byte(text), &quoted); err == nil {
		text = quoted
	}
	text = strings.TrimSpace(text)
	return text, text != ""
}
