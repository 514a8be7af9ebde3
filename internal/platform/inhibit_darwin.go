package platform

func inhibitCommand() (string, []string) {
	// -i prevents idle sleep until the process is killed
	return "caffeinate", []string{"-i"}
}
