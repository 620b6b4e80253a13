package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Score is a single labelled value of a score object.
type Score struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Scores is a JSON object of numbers that keeps document order.
// Display order follows the producer, so a plain map is not enough.
type Scores []Score

// Get returns the value stored under key.
func (s Scores) Get(key string) (float64, bool) {
	for _, sc := range s {
		if sc.Key == key {
			return sc.Value, true
		}
	}
	return 0, false
}

// Keys returns the keys in document order.
func (s Scores) Keys() []string {
	keys := make([]string, len(s))
	for i, sc := range s {
		keys[i] = sc.Key
	}
	return keys
}

// Values returns the values in document order.
func (s Scores) Values() []float64 {
	vals := make([]float64, len(s))
	for i, sc := range s {
		vals[i] = sc.Value
	}
	return vals
}

// Without returns a copy that omits the given keys.
func (s Scores) Without(keys ...string) Scores {
	out := make(Scores, 0, len(s))
next:
	for _, sc := range s {
		for _, k := range keys {
			if sc.Key == k {
				continue next
			}
		}
		out = append(out, sc)
	}
	return out
}

// UnmarshalJSON decodes an object of numbers, preserving key order.
// A repeated key keeps its first position and its last value.
func (s *Scores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("scores: expected object, got %v", tok)
	}

	out := Scores{}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("scores: expected key, got %v", keyTok)
		}
		var v float64
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("scores: %q: %w", key, err)
		}
		if i, seen := index[key]; seen {
			out[i].Value = v
			continue
		}
		index[key] = len(out)
		out = append(out, Score{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalJSON encodes the scores as an object in stored order.
func (s Scores) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sc.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(sc.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
