// Package cmd implements the command-line interface for the serbench
// serialization benchmark suite.
//
// The package is organized into several subpackages:
//
//   - sizes: Command printing the encoded byte size of both sample
//     variants for every registered serializer
//   - bench: Command running in-process encode/decode benchmarks
//   - util: Shared utilities for command-line processing and
//     configuration (internal use)
//
// See serbench -help for a list of all commands.
package cmd
