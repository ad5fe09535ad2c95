// SPDX-License-Identifier: MIT

// Package input locates and reads puzzle inputs.
//
// Real inputs live in a directory as dayNN.txt (zero-padded) or dayN.txt.
// Setting the EXAMPLE environment variable switches a run to the worked
// examples embedded in examples.yaml, which also carry the expected
// answers.
package input
