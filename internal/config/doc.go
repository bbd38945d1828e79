// Package config defines the runtime configuration for the simulator: grid
// geometry, pacing, seeding, front-end selection and logging, together with
// validation and an optional HCL profile layer that overrides the built-in
// defaults.
//
// The resolution order is fixed: built-in defaults first, then any profile
// files, then explicit command-line flags. The cli package owns that last
// layer; this package owns the first two.
package config
