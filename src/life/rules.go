package life

/*
	The four life/death rules:
		1. a live cell with fewer than two live neighbors dies
		2. a live cell with two or three live neighbors stays alive
		3. a live cell with more than three live neighbors dies
		4. a dead cell with exactly three live neighbors comes alive
	which collapse to: (alive && neighbors == 2) || neighbors == 3
*/

//nextState computes the next liveness of one cell, shared by all step strategies
func nextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
