/*
Package dialsim simulates a 100-position circular dial driven by a list of turn
instructions and counts how often the dial reaches zero.

Each instruction is a direction symbol followed by a tick count, one per line:

	R1000
	L250

The dial starts at 50. Two counters are reported: the number of turns that end
exactly on 0, and the number of times the dial passes through or lands on 0 during
any turn (which includes the former).

# Usage

	summary, err := dialsim.SimulateFile(ctx, "input.txt")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(summary.ZerosAtEndOfRotation, summary.ZerosDuringRotation)

Malformed input is never partially applied: parsing completes before the first turn
runs, and every error is returned to the caller.
*/
package dialsim
