package kirka

import (
	"encoding/json"
	"testing"
)

func TestFrameUnmarshalPreservesRaw(t *testing.T) {
	raw := `{"type":2,"message":"hi","user":{"id":"u1","shortId":"AB12C","name":"a","level":5}}`

	var frame Frame
	if err := json.Unmarshal([]byte(raw), &frame); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if frame.Type != FrameTypeChat || frame.Message != "hi" {
		t.Errorf("frame = %+v", frame)
	}
	if frame.User == nil || frame.User.ShortID != "AB12C" || frame.User.Level != 5 {
		t.Errorf("user = %+v", frame.User)
	}
	if string(frame.Raw) != raw {
		t.Errorf("Raw = %s", frame.Raw)
	}
}

func TestFrameUnmarshalBatch(t *testing.T) {
	raw := `{"type":3,"messages":[
		{"type":2,"message":"one","user":{"id":"u1","shortId":"AA111","name":"a"}},
		{"type":2,"message":"two","user":{"id":"u2","shortId":"BB222","name":"b"}}
	]}`

	var frame Frame
	if err := json.Unmarshal([]byte(raw), &frame); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if frame.Type != FrameTypeBatch || len(frame.Messages) != 2 {
		t.Fatalf("frame = %+v", frame)
	}
	if frame.Messages[0].Message != "one" || frame.Messages[1].Message != "two" {
		t.Errorf("messages = %+v", frame.Messages)
	}
}

func TestFrameIsSystem(t *testing.T) {
	system := &Frame{Type: FrameTypeSystem}
	if !system.IsSystem() {
		t.Error("type 13 without a user must be a system frame")
	}

	withUser := &Frame{Type: FrameTypeSystem, User: &FrameUser{ID: "u1"}}
	if withUser.IsSystem() {
		t.Error("type 13 with a user must not be a system frame")
	}

	chat := &Frame{Type: FrameTypeChat}
	if chat.IsSystem() {
		t.Error("chat frame misclassified as system")
	}
}
