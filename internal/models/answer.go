package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type AnswerKind uint8

const (
	AnswerKindNone AnswerKind = iota
	AnswerKindText
	AnswerKindNumber
)

// Answer is either a string or a number. It keeps the JSON kind it was
// decoded from, which the grader relies on.
type Answer struct {
	kind   AnswerKind
	text   string
	number float64
}

func TextAnswer(s string) Answer {
	return Answer{kind: AnswerKindText, text: s}
}

func NumberAnswer(f float64) Answer {
	return Answer{kind: AnswerKindNumber, number: f}
}

func (a Answer) Kind() AnswerKind { return a.kind }

func (a Answer) IsZero() bool { return a.kind == AnswerKindNone }

func (a Answer) IsNumber() bool { return a.kind == AnswerKindNumber }

// Number returns the numeric value when the answer was given as a number.
func (a Answer) Number() (float64, bool) {
	return a.number, a.kind == AnswerKindNumber
}

// String renders the answer the way it is compared as text: numbers use the
// shortest decimal form, so 4.0 becomes "4".
func (a Answer) String() string {
	switch a.kind {
	case AnswerKindText:
		return a.text
	case AnswerKindNumber:
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	default:
		return ""
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerKindText:
		return json.Marshal(a.text)
	case AnswerKindNumber:
		return json.Marshal(a.number)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		f, err := n.Float64()
		if err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		*a = NumberAnswer(f)
		return nil
	default:
		return fmt.Errorf("answer must be a string or a number, got %s", string(data))
	}
}
