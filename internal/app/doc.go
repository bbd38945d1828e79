// Package app contains the core application logic. It defines the main App
// struct, wires the board, ticker and RNG together from configuration, and
// owns the run lifecycle that hands the simulation to one of the front
// ends, decoupled from any specific entrypoint like a CLI.
package app
