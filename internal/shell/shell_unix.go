//go:build !windows

package shell

const (
	shellName = "sh"
	shellFlag = "-c"
)
