package userdata

import (
	"fmt"
	"io"
	"os"
)

// CheckUserdata reports on the directories and config files templateme
// reads. When fix is true, a missing per-user config directory is created.
// It returns the number of problems found.
func CheckUserdata(w io.Writer, fix bool) int {
	fmt.Fprintln(w, "Userdata check:")
	problems := 0

	// The system directory is optional and never created.
	if !checkDirExists(w, GetSystemDir(), false) {
		fmt.Fprintln(w, "         Optional: machine-wide templates live here")
	}

	userDir, err := GetUserConfigDir()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		problems++
	} else if !checkDirExists(w, userDir, fix) {
		problems++
	}

	for _, f := range ConfigFiles() {
		checkFileExists(w, f)
	}
	return problems
}

// checkDirExists reports on path and reports whether it is (now) a usable
// directory.
func checkDirExists(w io.Writer, path string, fix bool) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, DirPermNormal); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return false
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
			return true
		}
		return false
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", path)
		return false
	}
	if _, err := os.ReadDir(path); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s is not readable: %v\n", path, err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return true
}

func checkFileExists(w io.Writer, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}
