//go:build js || wasip1 || plan9

package output

func systemTerminalWidth() (int, bool) {
	return 0, false
}
