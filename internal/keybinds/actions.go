package keybinds

// Category groups actions for display. Registry order follows category order.
type Category string

const (
	CategoryMovement  Category = "movement"
	CategoryActions   Category = "actions"
	CategoryInterface Category = "interface"
)

const (
	MoveUp        ActionID = "moveUp"
	MoveLeft      ActionID = "moveLeft"
	MoveDown      ActionID = "moveDown"
	MoveRight     ActionID = "moveRight"
	Sprint        ActionID = "sprint"
	Interact      ActionID = "interact"
	Teleport      ActionID = "teleport"
	Heal          ActionID = "heal"
	Drop          ActionID = "drop"
	SplitDrop     ActionID = "splitDrop"
	WeaponsHUD    ActionID = "weaponsHud"
	QuickSwitch   ActionID = "quickSwitch"
	Chat          ActionID = "chat"
	PlayerList    ActionID = "playerList"
	ControlsPanel ActionID = "controlsPanel"
)

// Action describes one rebindable action and its default binding
type Action struct {
	ID          ActionID
	Label       string
	Description string
	Category    Category
	Default     Token
}

// registry is the closed list of actions in declaration order.
// Conflict scans and sanitizer precedence both follow this order.
var registry = []Action{
	{ID: MoveUp, Label: "Move Up", Description: "walk north", Category: CategoryMovement, Default: "KeyW"},
	{ID: MoveLeft, Label: "Move Left", Description: "walk west", Category: CategoryMovement, Default: "KeyA"},
	{ID: MoveDown, Label: "Move Down", Description: "walk south", Category: CategoryMovement, Default: "KeyS"},
	{ID: MoveRight, Label: "Move Right", Description: "walk east", Category: CategoryMovement, Default: "KeyD"},
	{ID: Sprint, Label: "Sprint", Description: "hold to run", Category: CategoryMovement, Default: Shift},

	{ID: Interact, Label: "Interact", Description: "use or pick up the nearest object", Category: CategoryActions, Default: "KeyE"},
	{ID: Teleport, Label: "Teleport", Description: "teleport to the marked location", Category: CategoryActions, Default: "KeyT"},
	{ID: Heal, Label: "Heal", Description: "consume a healing item", Category: CategoryActions, Default: "KeyH"},
	{ID: Drop, Label: "Drop", Description: "drop the held stack", Category: CategoryActions, Default: "KeyG"},
	{ID: SplitDrop, Label: "Split Drop", Description: "drop half of the held stack", Category: CategoryActions, Default: "KeyB"},
	{ID: WeaponsHUD, Label: "Weapons HUD", Description: "toggle the weapons overlay", Category: CategoryActions, Default: "KeyF"},
	{ID: QuickSwitch, Label: "Quick Switch", Description: "swap to the previous weapon", Category: CategoryActions, Default: "KeyQ"},

	{ID: Chat, Label: "Chat", Description: "open the chat box", Category: CategoryInterface, Default: Enter},
	{ID: PlayerList, Label: "Player List", Description: "show connected players", Category: CategoryInterface, Default: Tab},
	{ID: ControlsPanel, Label: "Controls", Description: "open the controls panel", Category: CategoryInterface, Default: "KeyI"},
}

var registryIndex = func() map[ActionID]int {
	index := make(map[ActionID]int, len(registry))
	for i, action := range registry {
		index[action.ID] = i
	}
	return index
}()

// Actions returns every registered action in declaration order
func Actions() []Action {
	out := make([]Action, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registered action with the given id
func Lookup(id ActionID) (Action, bool) {
	i, ok := registryIndex[id]
	if !ok {
		return Action{}, false
	}
	return registry[i], true
}

// Label returns the display label of id, or the raw id for unknown actions
func Label(id ActionID) string {
	if action, ok := Lookup(id); ok {
		return action.Label
	}
	return string(id)
}

// DefaultMapping returns a fresh copy of the default bindings
func DefaultMapping() Mapping {
	m := make(Mapping, len(registry))
	for _, action := range registry {
		m[action.ID] = action.Default
	}
	return m
}
