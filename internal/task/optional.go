package task

import "encoding/json"

// Optional tracks whether a JSON field was present in the request body.
// A partial update must distinguish three states: absent (leave the column
// alone), explicit null (clear it), and a value — including falsy values
// like "" or false. A plain pointer collapses the first two.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
