// Command deepsolve poses natural-language problems to a DeepSolve agent
// from the command line.
package main

func main() {
	Execute()
}
