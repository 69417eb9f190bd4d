package apiconnect

import "encoding/json"

// jsonCodec marshals plain Go messages with encoding/json. It is registered
// under the name "json", replacing Connect's protobuf JSON codec, so both the
// handlers and the clients speak application/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
