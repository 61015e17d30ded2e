package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota

	// A-J select or deselect a pin.
	ActionPinA
	ActionPinB
	ActionPinC
	ActionPinD
	ActionPinE
	ActionPinF
	ActionPinG
	ActionPinH
	ActionPinI
	ActionPinJ

	// X, Y, Z play the top card of a hand pile.
	ActionPileX
	ActionPileY
	ActionPileZ

	ActionEndRoll // Space
	ActionConcede // N, give up the rest of the frame
	ActionConfirm // Enter
	ActionBack    // Escape
	ActionRestart // R after game over
	ActionQuit    // Ctrl+C

	actionCount
)

const (
	pinActions  = 10
	pileActions = 3
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionEndRoll: "EndRoll",
	ActionConcede: "Concede",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if i, ok := a.Pin(); ok {
		return "Pin" + string(rune('A'+i))
	}
	if i, ok := a.Pile(); ok {
		return "Pile" + string(rune('X'+i))
	}
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// PinAction returns the action for pin index i (0 = A).
func PinAction(i int) Action {
	if i < 0 || i >= pinActions {
		return ActionNone
	}
	return ActionPinA + Action(i)
}

// PileAction returns the action for hand pile i (0 = X).
func PileAction(i int) Action {
	if i < 0 || i >= pileActions {
		return ActionNone
	}
	return ActionPileX + Action(i)
}

// Pin reports which pin index a pin action refers to.
func (a Action) Pin() (int, bool) {
	if a < ActionPinA || a > ActionPinJ {
		return 0, false
	}
	return int(a - ActionPinA), true
}

// Pile reports which hand pile a pile action refers to.
func (a Action) Pile() (int, bool) {
	if a < ActionPileX || a > ActionPileZ {
		return 0, false
	}
	return int(a - ActionPileX), true
}

// InputFrame collects the actions triggered during one tick. Pin selection
// depends on the order keys were pressed, so the frame remembers it.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	order   []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records one press of an action. Every press is kept, repeats
// included, because pressing a selected pin again clears the selection.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.order = append(f.order, a)
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Ordered returns every press in the order it was set.
func (f InputFrame) Ordered() []Action {
	if len(f.order) == 0 && len(f.Actions) > 0 {
		// Frame built as a literal map: fall back to action order.
		out := make([]Action, 0, len(f.Actions))
		for a := ActionNone; a < actionCount; a++ {
			if f.Actions[a] {
				out = append(out, a)
			}
		}
		return out
	}
	return append([]Action(nil), f.order...)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for _, a := range f.Ordered() {
		clone.Set(a)
	}
	return clone
}
