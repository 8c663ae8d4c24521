package event

import "encoding/json"

// DecodePayload returns an event payload as T. Payloads published on the
// in-process bus are already T; anything else (a map decoded from JSON, for
// example) is converted with a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, err
	}
	return result, nil
}
