package input

import "testing"

func TestToEvdevKeyAMatchesScenario(t *testing.T) {
	// S6: Linux code 30 is KeyA.
	code, ok := ToEvdev(KeyA)
	if !ok {
		t.Fatalf("expected KeyA to be mapped")
	}
	if code != 30 {
		t.Fatalf("expected evdev code 30 for KeyA, got %d", code)
	}
}

func TestToEvdevUnknownIsUnmapped(t *testing.T) {
	if _, ok := ToEvdev(KeyUnknown); ok {
		t.Fatalf("expected KeyUnknown to be unmapped")
	}
}

func TestToEvdevOutOfRangeIsUnmapped(t *testing.T) {
	if _, ok := ToEvdev(HostKey(99999)); ok {
		t.Fatalf("expected an out-of-range HostKey to be unmapped")
	}
	if _, ok := ToEvdev(HostKey(-1)); ok {
		t.Fatalf("expected a negative HostKey to be unmapped")
	}
}

func TestEveryDeclaredLetterAndDigitIsMapped(t *testing.T) {
	keys := []HostKey{
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
		KeyEnter, KeySpace, KeyTab, KeyBackspace, KeyEscape,
		KeyLeftShift, KeyRightShift, KeyLeftCtrl, KeyRightCtrl, KeyLeftAlt, KeyRightAlt,
		KeyUp, KeyDown, KeyLeft, KeyRight,
	}
	for _, k := range keys {
		if _, ok := ToEvdev(k); !ok {
			t.Errorf("expected HostKey %d to be mapped", k)
		}
	}
}

func TestToEvdevButtonCodesMatchLinuxInputEventCodes(t *testing.T) {
	cases := map[MouseButton]uint32{
		ButtonLeft:   0x110,
		ButtonRight:  0x111,
		ButtonMiddle: 0x112,
	}
	for button, want := range cases {
		got, ok := ToEvdevButton(button)
		if !ok || got != want {
			t.Errorf("button %v: got 0x%X ok=%v, want 0x%X", button, got, ok, want)
		}
	}
}

func TestToEvdevButtonUnknownIsUnmapped(t *testing.T) {
	if _, ok := ToEvdevButton(ButtonUnknown); ok {
		t.Fatalf("expected ButtonUnknown to be unmapped")
	}
}

func TestBroadcasterDeliversToSubscriber(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	defer sub.Close()

	cmd := Command{Kind: CommandKey, Key: KeyA, State: Pressed}
	b.Publish(cmd)

	select {
	case got := <-sub.C:
		if got != cmd {
			t.Fatalf("got %+v, want %+v", got, cmd)
		}
	default:
		t.Fatalf("expected a command to be immediately available")
	}
}

func TestBroadcasterDropsOldestWhenLagged(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	defer sub.Close()

	// Fill the subscriber's buffer completely, then publish one more: the
	// oldest (key=1) must be the one that's gone, not the publish dropped
	// entirely.
	for i := 0; i < broadcastCapacity; i++ {
		b.Publish(Command{Kind: CommandKey, Key: HostKey(i + 1), State: Pressed})
	}
	overflow := Command{Kind: CommandKey, Key: KeyZ, State: Pressed}
	b.Publish(overflow)

	var last Command
	count := 0
	for {
		select {
		case cmd := <-sub.C:
			last = cmd
			count++
			continue
		default:
		}
		break
	}
	if count != broadcastCapacity {
		t.Fatalf("expected buffer to stay at capacity %d, got %d", broadcastCapacity, count)
	}
	if last != overflow {
		t.Fatalf("expected the most recent publish to have been delivered, got %+v", last)
	}
}

func TestBroadcasterPublishWithNoSubscribersDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	b.Publish(Command{Kind: CommandMotion, X: 1, Y: 2})
}
