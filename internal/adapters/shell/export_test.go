package shell

// ResolveEnvironmentForTest exposes resolveEnvironment.
func ResolveEnvironmentForTest(sysEnv, overrides []string) []string {
	return resolveEnvironment(sysEnv, overrides)
}

// LookPathForTest exposes lookPath.
func LookPathForTest(file string, env []string) (string, error) {
	return lookPath(file, env)
}
