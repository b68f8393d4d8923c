// version.go
package oxente

// Version and BuildDate are compile-time constants surfaced by the REPL
// banner and the driver's -version flag, in the teacher's own low-ceremony
// style (cmd/msg prints a literal compiled string rather than reading VCS
// metadata via runtime/debug.ReadBuildInfo).
const (
	Version   = "0.1.0"
	BuildDate = "dev"
)
