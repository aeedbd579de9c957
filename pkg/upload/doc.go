// Package upload transfers a linked NXJ executable to an NXT brick.
//
// Two integrations exist. CommandUploader spawns the nxjupload launcher with
// its plain "-u [-r] <file>" command line and streams what it prints into the
// log. Orchestrator calls a Transport, the capability of sending a file to a
// brick found by name or address over USB or Bluetooth, and tells a missing
// brick apart from other transport failures.
package upload
