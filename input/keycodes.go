// Package input translates host-side physical keys and mouse buttons into
// the Linux evdev codes the INPT sideband frame carries, and fans
// host-originated input commands out to the (single, in this system)
// connection engine.
package input

// HostKey is an abstract physical key on the host's keyboard. It exists so
// callers never depend on Linux evdev numbering directly; only this
// package's translation table does.
type HostKey int

const (
	KeyUnknown HostKey = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeyTab
	KeyCapsLock
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta
	KeySpace
	KeyEnter
	KeyBackspace

	KeyMinus
	KeyEqual
	KeyLeftBrace
	KeyRightBrace
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyDot
	KeySlash

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	hostKeyCount
)

// Linux evdev KEY_* codes, verbatim from linux/input-event-codes.h.
const (
	evKeyReserved  = 0
	evKeyEsc       = 1
	evKey1         = 2
	evKey2         = 3
	evKey3         = 4
	evKey4         = 5
	evKey5         = 6
	evKey6         = 7
	evKey7         = 8
	evKey8         = 9
	evKey9         = 10
	evKey0         = 11
	evKeyMinus     = 12
	evKeyEqual     = 13
	evKeyBackspace = 14
	evKeyTab       = 15
	evKeyQ         = 16
	evKeyW         = 17
	evKeyE         = 18
	evKeyR         = 19
	evKeyT         = 20
	evKeyY         = 21
	evKeyU         = 22
	evKeyI         = 23
	evKeyO         = 24
	evKeyP         = 25
	evKeyLeftBrace  = 26
	evKeyRightBrace = 27
	evKeyEnter      = 28
	evKeyLeftCtrl   = 29
	evKeyA          = 30
	evKeyS          = 31
	evKeyD          = 32
	evKeyF          = 33
	evKeyG          = 34
	evKeyH          = 35
	evKeyJ          = 36
	evKeyK          = 37
	evKeyL          = 38
	evKeySemicolon  = 39
	evKeyApostrophe = 40
	evKeyGrave      = 41
	evKeyLeftShift  = 42
	evKeyBackslash  = 43
	evKeyZ          = 44
	evKeyX          = 45
	evKeyC          = 46
	evKeyV          = 47
	evKeyB          = 48
	evKeyN          = 49
	evKeyM          = 50
	evKeyComma      = 51
	evKeyDot        = 52
	evKeySlash      = 53
	evKeyRightShift = 54
	evKeyLeftAlt    = 56
	evKeySpace      = 57
	evKeyCapsLock   = 58
	evKeyF1         = 59
	evKeyF2         = 60
	evKeyF3         = 61
	evKeyF4         = 62
	evKeyF5         = 63
	evKeyF6         = 64
	evKeyF7         = 65
	evKeyF8         = 66
	evKeyF9         = 67
	evKeyF10        = 68
	evKeyF11        = 87
	evKeyF12        = 88
	evKeyRightCtrl  = 97
	evKeyRightAlt   = 100
	evKeyHome       = 102
	evKeyUp         = 103
	evKeyPageUp     = 104
	evKeyLeft       = 105
	evKeyRight      = 106
	evKeyEnd        = 107
	evKeyDown       = 108
	evKeyPageDown   = 109
	evKeyInsert     = 110
	evKeyDelete     = 111
	evKeyLeftMeta   = 125
	evKeyRightMeta  = 126
)

// keycodeTable is indexed by HostKey and holds the evdev code. An unmapped
// entry is the zero value 0, which ToEvdev reports as (0, false).
var keycodeTable = buildKeycodeTable()

func buildKeycodeTable() [hostKeyCount]uint32 {
	var t [hostKeyCount]uint32
	set := func(k HostKey, code uint32) { t[k] = code }

	set(KeyA, evKeyA)
	set(KeyB, evKeyB)
	set(KeyC, evKeyC)
	set(KeyD, evKeyD)
	set(KeyE, evKeyE)
	set(KeyF, evKeyF)
	set(KeyG, evKeyG)
	set(KeyH, evKeyH)
	set(KeyI, evKeyI)
	set(KeyJ, evKeyJ)
	set(KeyK, evKeyK)
	set(KeyL, evKeyL)
	set(KeyM, evKeyM)
	set(KeyN, evKeyN)
	set(KeyO, evKeyO)
	set(KeyP, evKeyP)
	set(KeyQ, evKeyQ)
	set(KeyR, evKeyR)
	set(KeyS, evKeyS)
	set(KeyT, evKeyT)
	set(KeyU, evKeyU)
	set(KeyV, evKeyV)
	set(KeyW, evKeyW)
	set(KeyX, evKeyX)
	set(KeyY, evKeyY)
	set(KeyZ, evKeyZ)

	set(Key0, evKey0)
	set(Key1, evKey1)
	set(Key2, evKey2)
	set(Key3, evKey3)
	set(Key4, evKey4)
	set(Key5, evKey5)
	set(Key6, evKey6)
	set(Key7, evKey7)
	set(Key8, evKey8)
	set(Key9, evKey9)

	set(KeyF1, evKeyF1)
	set(KeyF2, evKeyF2)
	set(KeyF3, evKeyF3)
	set(KeyF4, evKeyF4)
	set(KeyF5, evKeyF5)
	set(KeyF6, evKeyF6)
	set(KeyF7, evKeyF7)
	set(KeyF8, evKeyF8)
	set(KeyF9, evKeyF9)
	set(KeyF10, evKeyF10)
	set(KeyF11, evKeyF11)
	set(KeyF12, evKeyF12)

	set(KeyEscape, evKeyEsc)
	set(KeyTab, evKeyTab)
	set(KeyCapsLock, evKeyCapsLock)
	set(KeyLeftShift, evKeyLeftShift)
	set(KeyRightShift, evKeyRightShift)
	set(KeyLeftCtrl, evKeyLeftCtrl)
	set(KeyRightCtrl, evKeyRightCtrl)
	set(KeyLeftAlt, evKeyLeftAlt)
	set(KeyRightAlt, evKeyRightAlt)
	set(KeyLeftMeta, evKeyLeftMeta)
	set(KeyRightMeta, evKeyRightMeta)
	set(KeySpace, evKeySpace)
	set(KeyEnter, evKeyEnter)
	set(KeyBackspace, evKeyBackspace)

	set(KeyMinus, evKeyMinus)
	set(KeyEqual, evKeyEqual)
	set(KeyLeftBrace, evKeyLeftBrace)
	set(KeyRightBrace, evKeyRightBrace)
	set(KeyBackslash, evKeyBackslash)
	set(KeySemicolon, evKeySemicolon)
	set(KeyApostrophe, evKeyApostrophe)
	set(KeyGrave, evKeyGrave)
	set(KeyComma, evKeyComma)
	set(KeyDot, evKeyDot)
	set(KeySlash, evKeySlash)

	set(KeyUp, evKeyUp)
	set(KeyDown, evKeyDown)
	set(KeyLeft, evKeyLeft)
	set(KeyRight, evKeyRight)

	set(KeyInsert, evKeyInsert)
	set(KeyDelete, evKeyDelete)
	set(KeyHome, evKeyHome)
	set(KeyEnd, evKeyEnd)
	set(KeyPageUp, evKeyPageUp)
	set(KeyPageDown, evKeyPageDown)

	return t
}

// ToEvdev translates a HostKey to its Linux evdev keycode. ok is false for
// KeyUnknown or any HostKey with no entry in the table (evdev code 0,
// KEY_RESERVED, is never assigned to a real key here); callers must not
// emit an INPT frame in that case.
func ToEvdev(k HostKey) (code uint32, ok bool) {
	if k <= KeyUnknown || k >= hostKeyCount {
		return 0, false
	}
	code = keycodeTable[k]
	return code, code != 0
}

// Linux evdev button codes (linux/input-event-codes.h) for the pointer
// buttons this bridge forwards.
const (
	BtnLeft   uint32 = 0x110
	BtnRight  uint32 = 0x111
	BtnMiddle uint32 = 0x112
	BtnSide   uint32 = 0x113
	BtnExtra  uint32 = 0x114
)

// MouseButton is an abstract host pointer button.
type MouseButton int

const (
	ButtonUnknown MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	ButtonSide
	ButtonExtra
)

// ToEvdevButton translates a MouseButton to its Linux evdev BTN_* code.
func ToEvdevButton(b MouseButton) (code uint32, ok bool) {
	switch b {
	case ButtonLeft:
		return BtnLeft, true
	case ButtonRight:
		return BtnRight, true
	case ButtonMiddle:
		return BtnMiddle, true
	case ButtonSide:
		return BtnSide, true
	case ButtonExtra:
		return BtnExtra, true
	default:
		return 0, false
	}
}
