// Package paths provides centralized path handling for nxj.
//
// It answers three questions for every other package:
//
//   - Where is the project? The directory holding nxj.toml, nxj.yaml or
//     pom.xml, found by walking up from the working directory.
//   - Where is the local artifact repository? NXJ_REPOSITORY when set,
//     otherwise ~/.m2/repository.
//   - Where do build products and logs go? The project's target directory,
//     and $XDG_STATE_HOME/nxj for the log file.
//
// # Environment Variables
//
//   - NXJ_REPOSITORY: local artifact repository root
//   - NXJ_PROJECT: project directory, skipping discovery
//   - NXJ_CONFIG_DIR: override the user configuration directory
//     (default: $XDG_CONFIG_HOME/nxj)
//   - XDG_STATE_HOME: base of the log directory
//
// # Usage
//
//	p, err := paths.New("")  // discover the project from the working directory
//	if err != nil {
//	    return err
//	}
//	p.ProjectDir()     // /home/user/robot
//	p.ClassesDir()     // /home/user/robot/target/classes
//	p.RepositoryRoot() // /home/user/.m2/repository
package paths
