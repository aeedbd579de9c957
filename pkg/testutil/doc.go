// Package testutil provides fakes and fixtures for testing nxj components.
//
// Key components:
//   - FakeRunner: scripted process.Runner that never spawns a process
//   - LineRecorder: collects tool output lines routed to a log sink
//   - WriteScript: writes a shell script standing in for nxjlink or nxjupload
//
// Orchestrator tests should use FakeRunner; only pkg/process and the
// end-to-end command tests spawn real scripts.
package testutil
