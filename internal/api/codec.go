package api

import (
	"encoding/json"
	"fmt"
)

// codecName replaces Connect's built-in "json" codec, which only accepts
// protobuf messages.
const codecName = "json"

// jsonCodec marshals the plain Go request and response structs of this package
// with encoding/json, keeping the wire format of Connect's JSON protocol.
type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	return nil
}
