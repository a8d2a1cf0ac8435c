package input

import "testing"

func TestKeyboardEdgeDetection(t *testing.T) {
	kb := NewKeyboard()

	// Frame 1: K goes down.
	kb.SetKey(KeyK, true)
	if !kb.IsJustPressed(KeyK) {
		t.Fatal("frame 1: expected K just pressed")
	}
	kb.Update()

	// Frame 2: no events.
	if kb.IsJustPressed(KeyK) {
		t.Error("frame 2: K should no longer be just pressed")
	}
	if !kb.IsPressed(KeyK) {
		t.Error("frame 2: K should still be pressed")
	}
	if kb.IsJustReleased(KeyK) {
		t.Error("frame 2: K should not be just released")
	}
	kb.Update()

	// Frame 3: K goes up.
	kb.SetKey(KeyK, false)
	if !kb.IsJustReleased(KeyK) {
		t.Error("frame 3: expected K just released")
	}
	if kb.IsPressed(KeyK) {
		t.Error("frame 3: K should not be pressed")
	}
	kb.Update()

	// Frame 4: edge consumed.
	if kb.IsJustReleased(KeyK) {
		t.Error("frame 4: release edge should be consumed")
	}
}

func TestKeyboardUnknownKeysAreReleased(t *testing.T) {
	kb := NewKeyboard()
	for _, k := range []Key{KeyA, KeyEscape, KeyUnknown, Key(999)} {
		if kb.IsPressed(k) || kb.IsJustPressed(k) || kb.IsJustReleased(k) {
			t.Errorf("key %v should report not pressed", k)
		}
	}
}

func TestKeyboardPressAndReleaseWithinFrame(t *testing.T) {
	kb := NewKeyboard()
	kb.SetKey(KeySpace, true)
	kb.SetKey(KeySpace, false)

	if kb.IsPressed(KeySpace) || kb.IsJustPressed(KeySpace) || kb.IsJustReleased(KeySpace) {
		t.Error("a tap inside one frame should leave no visible edge")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"escape", KeyEscape, false},
		{"Esc", KeyEscape, false},
		{"RETURN", KeyEnter, false},
		{"a", KeyA, false},
		{"z", KeyZ, false},
		{"7", Key7, false},
		{" left ", KeyLeft, false},
		{"unknown", KeyUnknown, true},
		{"f13", KeyUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, k := range AllKeys() {
		got, err := ParseKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKey(%q) = %v, %v", k.String(), got, err)
		}
	}
}
