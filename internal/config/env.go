package config

import "os"

// Settings are process-level options that may come from the environment.
type Settings struct {
	DataDir    string
	LogLevel   string
	ConfigFile string
}

type envResolver struct {
	envVar     string
	defaultVal string
	setter     func(*Settings, string)
}

var resolvers = []envResolver{
	{"DAISYWORLD_DATA", ".daisyworld", func(s *Settings, v string) { s.DataDir = v }},
	{"DAISYWORLD_LOG_LEVEL", "info", func(s *Settings, v string) { s.LogLevel = v }},
	{"DAISYWORLD_CONFIG", "", func(s *Settings, v string) { s.ConfigFile = v }},
}

// ResolveSettings applies environment overrides over the defaults. lookup is
// usually os.LookupEnv.
func ResolveSettings(lookup func(string) (string, bool)) Settings {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var s Settings
	for _, r := range resolvers {
		v := r.defaultVal
		if env, ok := lookup(r.envVar); ok && env != "" {
			v = env
		}
		r.setter(&s, v)
	}
	return s
}
