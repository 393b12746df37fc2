// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Cca is a calculator for Conway chained arrow notation. It reduces a chain
such as 3>3>2 to a single number, however large, or reports how far it got.

Usage:

	cca [flags] [chain ...]
	cca [flags] demo [--all]

Chains given as arguments are reduced in turn. With no arguments, chains
are read from standard input, one per line. When standard input is a
terminal, cca prompts, offers line editing, and asks after each result
whether to continue.

A chain is 2 to 4 non-negative whole numbers separated by the delimiter,
by default >. It is reduced with Conway's rules, where X stands for any
leading part of the chain:

	a>b      = a to the power b
	X>1      = X
	X>1>z    = X
	X>y>z    = X>(X>(y-1)>z)>(z-1)

plus two shortcuts: a chain starting 2>2 is 4, and a chain starting 1 is 1.
The inner chain made by the last rule is reduced before the outer one
continues.

For each chain cca prints the input and the reduced expression:

	input CCA: ( 3 > 3 > 2 )
	reduced expression: ( 7.62559748499e12 )

Numbers are held as layered magnitudes: a mantissa and a power-of-ten
exponent beneath a tower of tens, so 10^10^3000 is ten to the power ten to
the power 3000. Once the tower reaches --max-tower, it is written as a
count, as in 8PT^3000. Sums and products of values two or more levels up
the tower are not computed; the larger value stands for the result.

A chain whose terms grow beyond --max-expandable, or whose nesting passes
--max-depth, is abandoned: the partly reduced chain is printed, followed by
the reason.

	input CCA: ( 2 > 3 > 4 )
	reduced expression: ( 2 > 65536 > 2 )
	abandoned: too large

Flags:

	--config file         YAML file of settings; flags override it
	--precision digits    decimal digits carried in every computation (34)
	--max-exp n           exponent ceiling before moving up the tower (2000)
	--max-tower n         tower height written as nPT^x (8)
	--max-expandable n    largest term a chain still expands (1000)
	--max-depth n         nesting depth at which reduction gives up (2000)
	--digits n            significant digits printed (12)
	--delimiter s         term separator (>)
	--prompt s            interactive prompt ("cca> ")
	--debug list          comma-separated debug switches

The config file uses the keys precision, max_exp, max_tower,
max_expandable, max_depth, digits, delimiter, prompt and debug (a list).

Debug switches:

	trace   log every rule as it fires, with the whole chain, on standard error
	stats   print rule counts and the deepest nesting after each result
	cpu     print the CPU time of each reduction

The demo subcommand steps through a prepared list of chains: press return
for the next one, type a chain to try it, or type quit.
*/
package main
