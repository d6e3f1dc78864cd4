//go:build !windows && !darwin && !linux

package terminal

import "fmt"

// Launch is unsupported outside Windows, macOS and Linux.
func Launch(opts Options) (*Handle, error) {
	return nil, fmt.Errorf("terminal launching is not supported on this platform")
}
