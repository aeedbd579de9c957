// Package classpath turns a dependency list into the classpath handed to the
// NXJ linker.
//
// Artifacts are located by the standard local repository convention:
//
//	<root>/<group segments>/<artifactId>/<version>/<artifactId>-<version>.<type>
//
// Only compile scope dependencies take part. Nothing here touches the
// filesystem; a resolved path is a name, not a promise that the file exists.
package classpath
