//go:build !linux && !darwin

package platform

func inhibitCommand() (string, []string) {
	return "", nil
}
