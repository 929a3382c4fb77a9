package game

// Action is a game state transformation.
type Action int

//go:generate go tool stringer -type=Action
const (
	START     = Action(0) // Reset to the starting configuration.
	SPAWN     = Action(1) // Append an obstacle from the Spawner.
	SCORE     = Action(2) // Increment the score.
	MOVE_UP   = Action(3) // Move the player one row up.
	MOVE_DOWN = Action(4) // Move the player one row down.
	END       = Action(5) // Set the game over flag.
)
