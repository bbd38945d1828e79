// Package life implements a bounded Conway's Game of Life board.
//
// The board is a fixed square with hard edges: cells beyond the boundary do
// not exist and always count as dead, so patterns collide with the edge
// instead of wrapping around to the far side. Alongside the current
// generation the board keeps the one immediately before it, which lets
// callers classify every cell by its latest transition (born, alive, died or
// dead) without tracking any history themselves.
//
// A Grid is plain data guarded by nothing; callers drive it from a single
// goroutine, typically a frame loop.
package life
