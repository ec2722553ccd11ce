package rules

/*
ApplyConwayRules returns the next state of a single cell given its current state
and the number of live cells in its 8-cell neighborhood.

A live cell survives with 2 or 3 live neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
