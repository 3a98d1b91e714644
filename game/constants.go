package game

const (
	// DieSize is the number of faces on the movement die.
	DieSize = 6
	// MaxTurns caps the number of rounds before a game is declared
	// inconclusive.
	MaxTurns = 100

	MinPlayers = 3
	MaxPlayers = 6

	// NumTargets is the size of the shared target pool. The first
	// NumTargets vertices of the board are the target locations.
	NumTargets = 40
	// TargetsPerPlayer is the number of targets dealt to each player.
	TargetsPerPlayer = 4

	// TargetConsumed marks a dealt target slot that has been reached.
	TargetConsumed = NumTargets
	// BoegUnassigned means no player currently holds the Boeg role.
	BoegUnassigned = -1

	// MaxLocationNameLen bounds location names in board assets.
	MaxLocationNameLen = 40
)
