package domain

// Setting names accepted by the toggle operation.
const (
	SettingDarkMode    = "dark_mode"
	SettingPrivateMode = "private_mode"
)

// Settings are per-user display preferences.
type Settings struct {
	DarkMode    bool `json:"dark_mode"`
	PrivateMode bool `json:"private_mode"`
}

// Toggle flips the named setting and reports whether the name was known.
func (s *Settings) Toggle(name string) bool {
	switch name {
	case SettingDarkMode:
		s.DarkMode = !s.DarkMode
	case SettingPrivateMode:
		s.PrivateMode = !s.PrivateMode
	default:
		return false
	}
	return true
}
