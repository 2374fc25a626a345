package config

// Resolve builds the settings for a run started in dir: defaults, then
// the config file (explicitPath or the nearest one found walking up),
// then the environment, then flags. It returns the settings and the
// config file used, if any. The result is validated.
func Resolve(dir, explicitPath string, getenv func(string) string, flags Layer) (Settings, string, error) {
	path, err := Find(dir, explicitPath)
	if err != nil {
		return Settings{}, "", err
	}
	fileLayer, err := Load(path)
	if err != nil {
		return Settings{}, path, err
	}
	envLayer, err := FromEnv(getenv)
	if err != nil {
		return Settings{}, path, err
	}

	s := Merge(Default(), fileLayer, envLayer, flags)
	if err := Validate(s); err != nil {
		return Settings{}, path, err
	}
	return s, path, nil
}
