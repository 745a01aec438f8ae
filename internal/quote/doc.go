// Package quote wires the freshness policy, the snapshot store and the market
// source into the single "current index value" operation printed by the CLI.
package quote
