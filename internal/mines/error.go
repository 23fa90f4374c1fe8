package mines

// AssertionError marks a defect in board generation logic. It is never
// a player-facing condition; [NewGame] recovers it and returns it as a
// plain error.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
