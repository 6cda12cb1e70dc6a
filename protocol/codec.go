package protocol

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/oerror"
)

// Envelope wraps an encoded message with its type.
type Envelope struct {
	_ struct{} `cbor:",toarray"`

	Type    MessageType
	Payload cbor.RawMessage
}

// Encode serializes a message into an envelope.
func Encode(msg Message) ([]byte, error) {
	payload, err := cbor.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", msg, err)
	}
	data, err := cbor.Marshal(Envelope{Type: msg.Type(), Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return data, nil
}

// Decode parses an envelope and returns the message inside it.
func Decode(data []byte) (Message, error) {
	var env Envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	var msg Message
	switch env.Type {
	case MessageTypeInput:
		msg = &InputFrame{}
	case MessageTypeCorrection:
		msg = &Correction{}
	default:
		return nil, oerror.New(game.ErrorUnknownMessage, env.Type)
	}
	if err := cbor.Unmarshal(env.Payload, msg); err != nil {
		return nil, fmt.Errorf("decode %T: %w", msg, err)
	}
	return msg, nil
}
