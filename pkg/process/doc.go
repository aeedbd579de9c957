// Package process runs the external leJOS tools.
//
// A run spawns the tool, forwards every line it prints to a logging.LineSink
// and reports the exit code. Output is drained by a reader task while a second
// task waits for the process; both are joined before the result is returned,
// so a tool that fills its output pipe can never stall the wait.
//
// A non-zero exit is not an error at this level: callers decide what an exit
// code means. Errors are reserved for a tool that cannot be started or waited
// on (errors.ErrProcessSpawn).
package process
