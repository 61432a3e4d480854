package commands

// schemaPath picks the schema file path from, in priority order: a
// positional argument, the --schema flag, the configured default.
func schemaPath(flagValue string, args []string, configured string) string {
	if len(args) > 0 {
		return args[0]
	}
	if flagValue != "" {
		return flagValue
	}
	return configured
}
