package platform

func inhibitCommand() (string, []string) {
	return "systemd-inhibit", []string{
		"--what=idle:sleep",
		"--who=tomato",
		"--why=Pomodoro timer running",
		"--mode=block",
		"sleep", "infinity",
	}
}
