package tracker

import (
	"encoding/json"
	"fmt"
)

// Packet is the record the external tracker pushes once per tick. A tick
// may carry zero or more hand frames (one per visible hand) and zero or
// more face frames. Frames without their own timestamp inherit the packet
// timestamp.
type Packet struct {
	Timestamp int64       `json:"timestamp"` // Unix milliseconds
	Hands     []HandFrame `json:"hands,omitempty"`
	Faces     []FaceFrame `json:"faces,omitempty"`
}

// ParsePacket decodes a tracker packet from its JSON wire form and
// propagates the packet timestamp onto frames that did not carry one.
func ParsePacket(data []byte) (*Packet, error) {
	var p Packet
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse tracker packet: %w", err)
	}
	for i := range p.Hands {
		if p.Hands[i].Timestamp == 0 {
			p.Hands[i].Timestamp = p.Timestamp
		}
	}
	for i := range p.Faces {
		if p.Faces[i].Timestamp == 0 {
			p.Faces[i].Timestamp = p.Timestamp
		}
	}
	return &p, nil
}
