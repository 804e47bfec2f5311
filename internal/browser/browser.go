// Package browser opens URLs in the user's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open starts the platform's URL handler for link and returns without
// waiting for it to exit.
func Open(link string) error {
	name, args, err := command(runtime.GOOS, link)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("browser.Open: %w", err)
	}
	return nil
}

// command returns the program and arguments that open link on goos.
func command(goos, link string) (name string, args []string, err error) {
	switch goos {
	case "darwin":
		return "open", []string{link}, nil
	case "windows":
		// cmd /c start would split the URL on '&'.
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{link}, nil
	default:
		return "", nil, fmt.Errorf("browser.Open: unsupported platform: %s", goos)
	}
}
